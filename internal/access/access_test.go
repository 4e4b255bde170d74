package access_test

import (
	"errors"
	"testing"

	"github.com/msshishlin/shareit/internal/access"
)

func TestRequireOwner(t *testing.T) {
	if err := access.RequireOwner(7, 7); err != nil {
		t.Errorf("owner must pass, got %v", err)
	}
	if err := access.RequireOwner(7, 8); !errors.Is(err, access.ErrDenied) {
		t.Errorf("expected ErrDenied, got %v", err)
	}
}

func TestRequireParticipant(t *testing.T) {
	t.Run("booker passes", func(t *testing.T) {
		if err := access.RequireParticipant(1, 1, 2); err != nil {
			t.Errorf("booker must pass, got %v", err)
		}
	})

	t.Run("owner passes", func(t *testing.T) {
		if err := access.RequireParticipant(2, 1, 2); err != nil {
			t.Errorf("owner must pass, got %v", err)
		}
	})

	t.Run("stranger denied", func(t *testing.T) {
		if err := access.RequireParticipant(3, 1, 2); !errors.Is(err, access.ErrDenied) {
			t.Errorf("expected ErrDenied, got %v", err)
		}
	})

	t.Run("no participants denies everyone", func(t *testing.T) {
		if err := access.RequireParticipant(3); !errors.Is(err, access.ErrDenied) {
			t.Errorf("expected ErrDenied, got %v", err)
		}
	})
}
