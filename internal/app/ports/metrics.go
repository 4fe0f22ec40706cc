package ports

type ActionMetrics interface {
	RecordSuccess(actionType string)
	RecordRejection(kind string)
	RecordFailure()
}
