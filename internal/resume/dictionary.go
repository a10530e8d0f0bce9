package resume

// techGroup maps a canonical technology name to the lowercase substrings that signal it.
type techGroup struct {
	name     string
	synonyms []string
}

// techGroups is scanned in order; skill output follows this order.
// Some synonyms carry surrounding spaces so short tokens ("go", "r") only match as words.
var techGroups = []techGroup{
	{"Python", []string{"python", "django", "flask", "fastapi", "celery", "pandas", "numpy", "scipy"}},
	{"JavaScript", []string{"javascript", "js", "typescript", "ts", "node", "nodejs", "express", "nestjs"}},
	{"React", []string{"react", "reactjs", "react.js", "redux", "next.js", "nextjs", "gatsby"}},
	{"Vue", []string{"vue", "vuejs", "vue.js", "nuxt"}},
	{"Angular", []string{"angular", "angularjs"}},
	{"Java", []string{"java", "spring", "springboot", "spring boot", "hibernate", "maven", "gradle"}},
	{"Kotlin", []string{"kotlin", "android"}},
	{"Swift", []string{"swift", "ios", "xcode", "swiftui"}},
	{"Go", []string{"golang", "go lang", " go "}},
	{"Rust", []string{"rust", "cargo"}},
	{"C++", []string{"c++", "cpp", "c plus plus"}},
	{"C#", []string{"c#", "dotnet", ".net", "asp.net", "csharp"}},
	{"Ruby", []string{"ruby", "rails", "ruby on rails"}},
	{"PHP", []string{"php", "laravel", "symfony", "wordpress"}},
	{"Scala", []string{"scala", "akka", "play framework"}},
	{"R", []string{" r ", "rstudio", "tidyverse", "ggplot"}},
	{"SQL", []string{"sql", "mysql", "postgresql", "postgres", "sqlite", "oracle db", "mssql", "t-sql"}},
	{"MongoDB", []string{"mongodb", "mongo", "mongoose"}},
	{"Redis", []string{"redis", "redis cache"}},
	{"Elasticsearch", []string{"elasticsearch", "elastic", "kibana", "logstash", "elk"}},
	{"Cassandra", []string{"cassandra", "apache cassandra"}},
	{"DynamoDB", []string{"dynamodb", "dynamo"}},
	{"GraphQL", []string{"graphql", "apollo"}},
	{"REST", []string{"rest api", "restful", "rest ful"}},
	{"gRPC", []string{"grpc", "protobuf", "protocol buffer"}},
	{"Docker", []string{"docker", "dockerfile", "docker-compose", "docker compose"}},
	{"Kubernetes", []string{"kubernetes", "k8s", "kubectl", "helm", "eks", "gke", "aks"}},
	{"AWS", []string{"aws", "amazon web services", "ec2", "s3", "lambda", "rds", "cloudwatch", "iam", "vpc", "ecs", "eks"}},
	{"GCP", []string{"gcp", "google cloud", "bigquery", "cloud run", "gke", "pubsub"}},
	{"Azure", []string{"azure", "microsoft azure", "aks", "azure functions"}},
	{"Terraform", []string{"terraform", "infrastructure as code", "iac"}},
	{"CI/CD", []string{"ci/cd", "jenkins", "github actions", "gitlab ci", "circleci", "travis"}},
	{"Kafka", []string{"kafka", "apache kafka", "event streaming"}},
	{"RabbitMQ", []string{"rabbitmq", "amqp", "message queue"}},
	{"Linux", []string{"linux", "ubuntu", "centos", "bash", "shell script"}},
	{"Git", []string{"git", "github", "gitlab", "bitbucket"}},
	{"Machine Learning", []string{"machine learning", "ml", "scikit-learn", "sklearn", "xgboost", "lightgbm"}},
	{"Deep Learning", []string{"deep learning", "tensorflow", "keras", "pytorch", "neural network", "cnn", "rnn", "lstm", "transformer"}},
	{"NLP", []string{"nlp", "natural language processing", "bert", "gpt", "huggingface", "spacy", "nltk"}},
	{"Data Engineering", []string{"spark", "apache spark", "pyspark", "airflow", "dbt", "data pipeline", "etl", "elt"}},
	{"Microservices", []string{"microservice", "microservices", "service mesh", "istio"}},
	{"Blockchain", []string{"blockchain", "solidity", "ethereum", "smart contract", "web3"}},
}

// degreeKeywords mark the education line.
var degreeKeywords = []string{
	"ph.d", "phd", "m.tech", "m.s.", "msc", "m.e.", "mba",
	"b.tech", "b.e.", "bsc", "b.s.", "bachelor", "master", "doctor",
}

// skillTemplates are curated depth questions per canonical skill.
var skillTemplates = map[string][]string{
	"Python": {
		"Your résumé mentions Python. Explain how the GIL affects concurrency and when you'd use multiprocessing vs asyncio.",
		"Walk me through how you've used Python decorators or context managers in a real project.",
		"Describe a memory management challenge you faced in a Python service and how you resolved it.",
	},
	"JavaScript": {
		"Explain the event loop and how you've handled async operations in your JavaScript projects.",
		"Describe a closure or prototype chain issue you debugged in production.",
		"How have you managed state or side-effects in a large JavaScript codebase?",
	},
	"React": {
		"In your React work, when did you choose useCallback vs useMemo, and what was the trade-off?",
		"Describe a performance bottleneck you hit in a React app and how you diagnosed it.",
		"How have you structured component re-renders and state management in a large React project?",
	},
	"Java": {
		"Explain how you've used Java's thread pool and where you saw contention issues.",
		"Describe a Spring Boot microservice you built. What design patterns did you use?",
		"How have you handled JVM memory tuning (GC, heap sizing) in a production service?",
	},
	"Go": {
		"Describe how you've used goroutines and channels to solve a concurrency problem.",
		"How did you handle error propagation and retries in a Go service you built?",
		"What made you choose Go for a project, and what limitations did you hit?",
	},
	"SQL": {
		"Describe a slow SQL query you diagnosed and how you optimised it.",
		"Walk me through your indexing strategy for a high-traffic table you've worked on.",
		"How have you handled schema migrations in a production database with zero downtime?",
	},
	"MongoDB": {
		"When have you chosen MongoDB over relational DB, and what schema design did you use?",
		"Describe an aggregation pipeline you built and the performance trade-offs.",
		"How did you handle data consistency in a MongoDB sharded cluster?",
	},
	"Docker": {
		"Walk me through your Dockerfile optimisation strategy for faster builds.",
		"Describe a multi-container setup you built with Docker Compose. What challenges came up?",
		"How have you handled secrets and environment config in Docker deployments?",
	},
	"Kubernetes": {
		"Describe a Kubernetes deployment issue you debugged: pods crashing, OOMKilled, etc.",
		"How have you configured resource limits, autoscaling, and health probes in your clusters?",
		"Walk me through your strategy for zero-downtime deployments in Kubernetes.",
	},
	"AWS": {
		"Describe an AWS architecture you designed. What services did you choose and why?",
		"How have you handled IAM roles and least-privilege access in an AWS project?",
		"Walk me through a cost optimisation you did on AWS infrastructure.",
	},
	"Machine Learning": {
		"Describe an end-to-end ML pipeline you built: data prep, training, evaluation, deployment.",
		"How did you handle class imbalance or data quality issues in a real project?",
		"Walk me through a model that underperformed. How did you debug and improve it?",
	},
	"Deep Learning": {
		"Describe a neural network architecture you designed. Why those layers and hyperparameters?",
		"How have you handled overfitting in a deep learning model you trained?",
		"Walk me through your GPU training setup and how you optimised throughput.",
	},
	"Kafka": {
		"Describe a Kafka-based architecture you built. What partitioning strategy did you use?",
		"How did you handle consumer lag and message ordering guarantees in your system?",
		"Walk me through a failure scenario in your Kafka setup and how you recovered.",
	},
	"Microservices": {
		"How did you handle inter-service communication and failure isolation in your microservices?",
		"Describe the biggest challenge you faced breaking a monolith into microservices.",
		"How have you implemented distributed tracing or observability across your services?",
	},
	"CI/CD": {
		"Walk me through a CI/CD pipeline you built from scratch. What stages and gates did it have?",
		"Describe a deployment that went wrong in your pipeline and how you rolled back.",
		"How did you implement environment-specific config and secrets in your pipeline?",
	},
}

// genericSkillTemplate is used for skills without a curated pool.
const genericSkillTemplate = "Describe a challenging technical problem you solved using {tech} in a real project."
