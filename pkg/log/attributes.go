package log

// Standard attribute keys for structured logging.
// Using shared constants keeps field names consistent across packages and
// makes log records queryable by downstream aggregators.
const (
	// OperationKey identifies the operation being performed
	// (e.g. "suggest_models", "generate_report").
	OperationKey = "operation"

	// TargetKey is the name of the target column under analysis.
	TargetKey = "target"

	// ProblemTypeKey is the resolved problem type ("classification" or
	// "regression").
	ProblemTypeKey = "problem_type"

	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "samples"

	// FeaturesKey is the number of feature columns (target excluded).
	FeaturesKey = "features"

	// ImbalanceRatioKey is the majority/minority class count ratio.
	ImbalanceRatioKey = "imbalance_ratio"

	// ModelsKey is the number of model result blocks in a report.
	ModelsKey = "models"

	// PathKey is a filesystem path, typically a report destination.
	PathKey = "path"
)
