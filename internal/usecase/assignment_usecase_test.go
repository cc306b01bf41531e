package usecase

import (
	"errors"
	"testing"

	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCollectOpenBatch(t *testing.T) {
	open := func() entity.SlotAssignment {
		return entity.SlotAssignment{ID: uuid.New(), Status: entity.SlotAssigned}
	}

	t.Run("all open members are collected", func(t *testing.T) {
		batch := []entity.SlotAssignment{open(), open(), open()}
		ids, err := collectOpenBatch(batch)
		if err != nil {
			t.Fatalf("collectOpenBatch: %v", err)
		}
		if len(ids) != 3 {
			t.Errorf("got %d IDs, want 3", len(ids))
		}
	})

	t.Run("a booked member fails the whole batch", func(t *testing.T) {
		batch := []entity.SlotAssignment{open(), {ID: uuid.New(), Status: entity.SlotBooked}}
		if _, err := collectOpenBatch(batch); !errors.Is(err, ErrSlotBatchHasBooked) {
			t.Errorf("got %v, want ErrSlotBatchHasBooked", err)
		}
	})

	t.Run("a reserved member fails the whole batch", func(t *testing.T) {
		batch := []entity.SlotAssignment{open(), {ID: uuid.New(), Status: entity.SlotReserved}}
		if _, err := collectOpenBatch(batch); !errors.Is(err, ErrSlotBatchHasBooked) {
			t.Errorf("got %v, want ErrSlotBatchHasBooked", err)
		}
	})

	t.Run("cancelled members are skipped, not removed", func(t *testing.T) {
		kept := open()
		batch := []entity.SlotAssignment{kept, {ID: uuid.New(), Status: entity.SlotCancelled}}
		ids, err := collectOpenBatch(batch)
		if err != nil {
			t.Fatalf("collectOpenBatch: %v", err)
		}
		if len(ids) != 1 || ids[0] != kept.ID {
			t.Errorf("got %v, want only the open member's ID", ids)
		}
	})

	t.Run("empty batch yields no IDs", func(t *testing.T) {
		ids, err := collectOpenBatch(nil)
		if err != nil {
			t.Fatalf("collectOpenBatch: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("got %d IDs, want 0", len(ids))
		}
	})
}
