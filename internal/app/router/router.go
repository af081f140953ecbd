package router

import (
	"time"

	"globe/dodrio_loan_eligibility/configs"
	"globe/dodrio_loan_eligibility/internal/app/handlers"
	"globe/dodrio_loan_eligibility/internal/app/middleware"
	"globe/dodrio_loan_eligibility/internal/pkg/audit"
	"globe/dodrio_loan_eligibility/internal/pkg/db"
	"globe/dodrio_loan_eligibility/internal/pkg/kafka/producer"
	"globe/dodrio_loan_eligibility/internal/pkg/predictor"
	"globe/dodrio_loan_eligibility/internal/pkg/pubsub"
	"globe/dodrio_loan_eligibility/internal/pkg/store"
	"globe/dodrio_loan_eligibility/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(loanPredictor *predictor.LoanPredictor, workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())
	r.Use(middleware.Cors(configs.ALLOWED_ORIGINS))
	r.Use(middleware.EnforceTrustedOrigin(configs.ALLOWED_ORIGINS))

	var resultCache *store.ResultCache
	if redisClient != nil {
		resultCache = store.NewResultCache(redisClient, time.Duration(configs.RESULT_CACHE_TTL_MINUTES)*time.Minute)
	}

	var predictionsRepo *store.PredictionsRepository
	var predictionStore handlers.PredictionStore
	if db.MDB != nil {
		predictionsRepo = store.NewPredictionsRepository()
		predictionStore = predictionsRepo
	}

	var auditRecords audit.RecordStore
	if predictionsRepo != nil {
		auditRecords = predictionsRepo
	}
	var decisionPublisher audit.DecisionPublisher
	if producer.KafkaProducer != nil {
		decisionPublisher = producer.KafkaProducer
	}
	var notifier pubsub.PubSubPublisherInterface
	if pubsubPublisher != nil {
		notifier = pubsubPublisher
	}
	var executor audit.Executor
	if workerPool != nil {
		executor = workerPool
	}
	auditService := audit.NewAuditService(executor, auditRecords, decisionPublisher, notifier)

	var predictorService handlers.PredictorService
	if loanPredictor != nil {
		predictorService = loanPredictor
	}
	predictionHandler := handlers.NewPredictionHandler(predictorService, resultCache, auditService, predictionStore)
	healthHandler := handlers.NewHealthHandler(loanPredictor != nil)

	r.POST("/IntegrationServices/LoanEligibility/Predict",
		middleware.RateLimit(redisClient, configs.RATE_LIMIT_PER_MINUTE),
		predictionHandler.Predict)
	r.GET("/IntegrationServices/LoanEligibility/Predictions/:requestId", predictionHandler.GetPrediction)
	r.DELETE("/IntegrationServices/LoanEligibility/Predictions/:requestId", predictionHandler.DeletePrediction)
	r.GET("/IntegrationServices/LoanEligibility/Summary", predictionHandler.GetSummary)

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	return r
}
