package inmemory

import "sync"

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ActionSuccess   uint64            `json:"action_success"`
	ActionRejection uint64            `json:"action_rejection"`
	ActionFailure   uint64            `json:"action_failure"`
	ByActionType    map[string]uint64 `json:"by_action_type"`
	ByRejectionKind map[string]uint64 `json:"by_rejection_kind"`
}

type Recorder struct {
	mu        sync.Mutex
	success   uint64
	rejection uint64
	failure   uint64
	byType    map[string]uint64
	byKind    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byType: map[string]uint64{},
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(actionType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byType[actionType]++
}

func (r *Recorder) RecordRejection(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejection++
	r.byKind[kind]++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:   r.success,
		ActionRejection: r.rejection,
		ActionFailure:   r.failure,
		ActionTotal:     r.success + r.rejection + r.failure,
		ByActionType:    make(map[string]uint64, len(r.byType)),
		ByRejectionKind: make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byType {
		out.ByActionType[k] = v
	}
	for k, v := range r.byKind {
		out.ByRejectionKind[k] = v
	}
	return out
}
