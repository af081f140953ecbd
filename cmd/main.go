package main

import (
	"context"
	"strconv"

	"globe/dodrio_loan_eligibility/configs"
	"globe/dodrio_loan_eligibility/internal/app/router"
	"globe/dodrio_loan_eligibility/internal/pkg/db"
	"globe/dodrio_loan_eligibility/internal/pkg/kafka/producer"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/otel"
	"globe/dodrio_loan_eligibility/internal/pkg/predictor"
	"globe/dodrio_loan_eligibility/internal/pkg/pubsub"
	"globe/dodrio_loan_eligibility/internal/pkg/redis"
	"globe/dodrio_loan_eligibility/internal/pkg/utils/worker"

	goredis "github.com/redis/go-redis/v9"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// Model artifacts. A failed load leaves the service in degraded mode:
	// health answers 503 and predictions answer model-not-loaded.
	loanPredictor, predErr := predictor.NewLoanPredictor(configs.ARTIFACTS_PATH)
	if predErr != nil {
		logger.Error(ctx, "Model artifacts failed to load, starting degraded: %v", predErr)
	} else {
		logger.Info(ctx, "Model artifacts loaded from %s", configs.ARTIFACTS_PATH)
	}

	// DB Connection
	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		logger.Error(ctx, "Error connecting to MongoDB: %v", dbErr)
	} else {
		db.MDB = mdb
		defer mdb.Close()
	}

	kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_SERVER, configs.KAFKA_TOPIC)
	if err != nil {
		logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
	} else {
		logger.Info(ctx, "Kafka Producer Created")
		producer.KafkaProducer = kafkaProducer
		defer kafkaProducer.Close()
	}

	// Pub/Sub Publisher, only when notifications are switched on
	var pubsubPublisher *pubsub.PubSubPublisher
	if configs.PUBSUB_ENABLED {
		pubsubPublisher, err = pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID)
		if err != nil {
			logger.Error(ctx, "Failed to create Pub/Sub Publisher: %v", err)
		} else {
			defer pubsubPublisher.Close()
			logger.Info(ctx, "Pub/Sub Publisher Created")
		}
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, "Invalid WORKER_POOL value: %v", er)
		numberOfWorkers = 5
	}

	// Connect to Redis. Rate limiting and the result cache degrade to no-ops
	// without it.
	var redisClient *goredis.Client
	rc, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: %v", err)
	} else {
		redisClient = rc.Client
		defer redis.Disconnect(rc.Client)
	}

	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	r := router.SetupRouter(loanPredictor, workerPool, redisClient, pubsubPublisher)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
