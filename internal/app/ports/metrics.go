package ports

type ActionMetrics interface {
	RecordSuccess(actionType string)
	RecordRejected(code string)
	RecordFailure()
}
