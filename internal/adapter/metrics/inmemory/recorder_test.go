package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("traitTakeFoodRequest")
	r.RecordSuccess("traitTakeFoodRequest")
	r.RecordSuccess("traitActivateRequest")
	r.RecordRejection("cooldown_active")
	r.RecordRejection("out_of_turn")
	r.RecordFailure()

	s := r.Snapshot()
	if s.ActionTotal != 6 {
		t.Fatalf("expected total 6, got %d", s.ActionTotal)
	}
	if s.ActionSuccess != 3 {
		t.Fatalf("expected success 3, got %d", s.ActionSuccess)
	}
	if s.ActionRejection != 2 {
		t.Fatalf("expected rejection 2, got %d", s.ActionRejection)
	}
	if s.ActionFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.ActionFailure)
	}
	if s.ByActionType["traitTakeFoodRequest"] != 2 {
		t.Fatalf("expected take food count 2, got %d", s.ByActionType["traitTakeFoodRequest"])
	}
	if s.ByActionType["traitActivateRequest"] != 1 {
		t.Fatalf("expected activate count 1, got %d", s.ByActionType["traitActivateRequest"])
	}
	if s.ByRejectionKind["cooldown_active"] != 1 {
		t.Fatalf("expected cooldown_active count 1")
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("traitTakeFoodRequest")

	s := r.Snapshot()
	s.ByActionType["traitTakeFoodRequest"] = 99

	if got := r.Snapshot().ByActionType["traitTakeFoodRequest"]; got != 1 {
		t.Fatalf("snapshot must not alias the recorder, got %d", got)
	}
}
