package service

// SyncMetrics records synchronization and regeneration outcomes. The
// usecase layer reports through this boundary; the infra layer exports it.
type SyncMetrics interface {
	// RecordLossPush records one life-loss push towards the platform API.
	RecordLossPush(success bool)

	// RecordRollback records an optimistic mutation that was rolled back.
	RecordRollback()

	// RecordRegeneration records a regeneration pass and the lives gained.
	RecordRegeneration(gained int)

	// RecordReconcile records a reconciliation pass outcome:
	// "clean", "drift" or "error".
	RecordReconcile(outcome string)

	// RecordUpstreamLatency records the duration of one platform API call.
	RecordUpstreamLatency(operation string, seconds float64)
}
