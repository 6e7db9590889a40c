package principal

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
)

// StudentLookup finds a student record by enrollment number.
type StudentLookup interface {
	GetByEnrollment(ctx context.Context, enrollment string) (models.Student, error)
}

// FacultyLookup finds a faculty profile by login username.
type FacultyLookup interface {
	GetByUsername(ctx context.Context, username string) (models.FacultyProfile, error)
}

// Resolver classifies an authenticated identity into exactly one principal
// kind. Classification never fails on unmatched identities; only store
// errors propagate.
type Resolver struct {
	students StudentLookup
	faculty  FacultyLookup
	logger   zerolog.Logger
}

// NewResolver constructs a principal resolver.
func NewResolver(students StudentLookup, faculty FacultyLookup, logger zerolog.Logger) *Resolver {
	return &Resolver{
		students: students,
		faculty:  faculty,
		logger:   logger.With().Str("component", "principal_resolver").Logger(),
	}
}

// Resolve classifies the identity. The order matters: the student match runs
// before the faculty match so a faculty login that happens to equal a
// student's enrollment number is never misclassified, and anything unmatched
// ends up as an unscoped admin-like principal.
func (r *Resolver) Resolve(ctx context.Context, identity Identity) (Principal, error) {
	if !identity.Authenticated || identity.Username == "" {
		return Principal{Kind: KindAdmin}, nil
	}

	student, err := r.students.GetByEnrollment(ctx, identity.Username)
	if err == nil {
		return Principal{Kind: KindStudent, StudentID: student.ID}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Principal{}, err
	}

	profile, err := r.faculty.GetByUsername(ctx, identity.Username)
	if err == nil {
		return Principal{
			Kind:     KindFaculty,
			Sections: profile.ClassList(),
			Subjects: profile.SubjectList(),
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Principal{}, err
	}

	r.logger.Debug().Str("username", identity.Username).Msg("identity has no student or faculty record, treating as admin")
	return Principal{Kind: KindAdmin}, nil
}
