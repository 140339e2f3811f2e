package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barcraft/backoffice/internal/core/domain"
)

func duplicateKeyError(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Index: 0, Code: 11000, Message: msg},
		},
	}
}

func TestDuplicateKeyToDomain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email index",
			err:  duplicateKeyError(`E11000 duplicate key error collection: barcraft.users index: uniq_email dup key: { email: "a@example.com" }`),
			want: domain.ErrDuplicateEmail,
		},
		{
			name: "username index",
			err:  duplicateKeyError(`E11000 duplicate key error collection: barcraft.users index: uniq_username dup key: { username: "alice" }`),
			want: domain.ErrDuplicateUsername,
		},
		{
			name: "unrecognised index defaults to username",
			err:  duplicateKeyError(`E11000 duplicate key error collection: barcraft.users index: _id_ dup key: { _id: "x" }`),
			want: domain.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateKeyToDomain(tt.err); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
