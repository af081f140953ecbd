package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
)

// ModelArtifacts is the immutable bundle loaded once at process start and
// shared read-only across requests.
type ModelArtifacts struct {
	Classifier     Classifier
	Regressor      Regressor
	LabelEncoders  LabelEncoderSet
	FeatureColumns []string
}

// artifactFile mirrors the JSON bundle written by the training pipeline.
// Pointer fields distinguish "key absent" from "key empty".
type artifactFile struct {
	Classifier     *LinearCoefficients `json:"classifier"`
	Regressor      *LinearCoefficients `json:"regressor"`
	Scaler         *StandardScaler     `json:"scaler"`
	LabelEncoders  map[string][]string `json:"label_encoders"`
	FeatureColumns []string            `json:"feature_columns"`
}

// LoadArtifacts reads and structurally validates the model bundle. Each
// failure mode maps to a distinct typed error so startup logs say exactly
// what went wrong.
func LoadArtifacts(path string) (*ModelArtifacts, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", consts.ErrorArtifactNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", consts.ErrorArtifactUnreadable, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", consts.ErrorArtifactUnreadable, path, err)
	}

	var file artifactFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrorArtifactCorrupt, err)
	}

	var missing []string
	if file.Classifier == nil {
		missing = append(missing, "classifier")
	}
	if file.Regressor == nil {
		missing = append(missing, "regressor")
	}
	if file.Scaler == nil {
		missing = append(missing, "scaler")
	}
	if file.LabelEncoders == nil {
		missing = append(missing, "label_encoders")
	}
	if file.FeatureColumns == nil {
		missing = append(missing, "feature_columns")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing keys: %s", consts.ErrorArtifactIncomplete, strings.Join(missing, ", "))
	}

	n := len(file.FeatureColumns)
	if len(file.Classifier.Weights) != n {
		return nil, fmt.Errorf("%w: classifier has %d weights for %d feature columns", consts.ErrorArtifactIncomplete, len(file.Classifier.Weights), n)
	}
	if len(file.Regressor.Weights) != n {
		return nil, fmt.Errorf("%w: regressor has %d weights for %d feature columns", consts.ErrorArtifactIncomplete, len(file.Regressor.Weights), n)
	}
	if len(file.Scaler.Mean) != n || len(file.Scaler.Scale) != n {
		return nil, fmt.Errorf("%w: scaler mean/scale length does not match feature columns", consts.ErrorArtifactIncomplete)
	}

	encoders := make(LabelEncoderSet, len(file.LabelEncoders))
	for column, classes := range file.LabelEncoders {
		encoders[column] = NewLabelEncoder(classes)
	}

	return &ModelArtifacts{
		Classifier:     &logisticClassifier{coef: *file.Classifier, scaler: file.Scaler},
		Regressor:      &linearRegressor{coef: *file.Regressor, scaler: file.Scaler},
		LabelEncoders:  encoders,
		FeatureColumns: file.FeatureColumns,
	}, nil
}
