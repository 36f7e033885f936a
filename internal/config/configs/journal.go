package configs

// Journal configures the submission journal reconciler.
type Journal struct {
	// ReconcileSpec is a robfig/cron spec for settling pending submissions.
	ReconcileSpec string `env:"RECONCILE_SPEC" envDefault:"@every 30s"`
	// BatchSize caps the submissions checked per reconciler run.
	BatchSize int `env:"BATCH_SIZE" envDefault:"50"`
}
