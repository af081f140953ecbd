package consts

import "globe/dodrio_loan_eligibility/internal/pkg/models"

var (
	ErrorArtifactNotFound = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_ARTIFACT_FILE_NOT_FOUND",
		Message: "Model artifact file not found",
	}
	ErrorArtifactUnreadable = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_ARTIFACT_FILE_UNREADABLE",
		Message: "Model artifact file could not be read",
	}
	ErrorArtifactCorrupt = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_ARTIFACT_FILE_CORRUPT",
		Message: "Model artifact file is not valid JSON",
	}
	ErrorArtifactIncomplete = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_ARTIFACT_FILE_INCOMPLETE",
		Message: "Model artifact file is missing required components",
	}
	ErrorInferenceFailed = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_INFERENCE_FAILED",
		Message: "Prediction pipeline failed",
	}
	ErrorModelNotLoaded = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_MODEL_NOT_LOADED",
		Message: "Model not loaded. Please contact the system administrator",
	}
	ErrorRateLimitExceeded = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_RATE_LIMIT_EXCEEDED",
		Message: "Too many prediction requests; retry later",
	}
	ErrorOriginNotTrusted = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_ORIGIN_NOT_TRUSTED",
		Message: "Request origin is not trusted",
	}
	ErrorPredictionNotFound = &models.CustomError{
		Code:    "DODRIO2_LOAN_ELIGIBILITY_PREDICTION_NOT_FOUND",
		Message: "No prediction recorded for the given request id",
	}
)
