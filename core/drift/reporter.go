package drift

import "go.uber.org/zap"

// Reporter logs the outcome of a verification run. Results are ephemeral,
// so the log stream is their durable destination.
type Reporter struct {
	logger *zap.Logger
}

// NewReporter creates a reporter.
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Record partitions results into verified, drifted and errored stores and
// logs one entry per problem plus a run summary.
func (r *Reporter) Record(results []VerificationResult) {
	var verified, drifted, errored int

	for _, res := range results {
		switch {
		case res.Error != "":
			errored++
			r.logger.Error("Store verification failed",
				zap.Uint("store_id", res.StoreID),
				zap.String("store", res.StoreName),
				zap.String("entity_type", res.EntityType),
				zap.String("error", res.Error))

		case !res.Verified:
			drifted++
			r.logger.Warn("Store drift detected",
				zap.Uint("store_id", res.StoreID),
				zap.String("store", res.StoreName),
				zap.String("entity_type", res.EntityType),
				zap.Int("total_local", res.TotalLocal),
				zap.Int("total_remote", res.TotalRemote),
				zap.Int("missing_in_remote", len(res.MissingInRemote)),
				zap.Int("extra_in_remote", len(res.ExtraInRemote)))

		default:
			verified++
			if len(res.ExtraInRemote) > 0 {
				r.logger.Info("Store verified, extra remote records present",
					zap.Uint("store_id", res.StoreID),
					zap.String("store", res.StoreName),
					zap.Int("extra_in_remote", len(res.ExtraInRemote)))
			}
		}
	}

	r.logger.Info("Verification run completed",
		zap.Int("stores", len(results)),
		zap.Int("verified", verified),
		zap.Int("drifted", drifted),
		zap.Int("errored", errored))
}
