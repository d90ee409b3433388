package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mckvie/hackathon/internal/hackathon"
)

// Registrations is the typed view of the registrations collection.
type Registrations struct {
	c *Collection
}

func NewRegistrations(s *Store, path string) *Registrations {
	return &Registrations{c: s.Collection(path)}
}

func (r *Registrations) Count(ctx context.Context) (int, error) {
	return r.c.Count(ctx)
}

// Add writes rec and returns it with the document ID and the server-assigned
// SubmittedAt filled in.
func (r *Registrations) Add(ctx context.Context, rec hackathon.RegistrationRecord) (hackathon.RegistrationRecord, error) {
	rec.ID = ""
	rec.SubmittedAt = r.c.s.now().UTC()
	id, err := r.c.insert(ctx, rec.SubmittedAt, rec)
	if err != nil {
		return hackathon.RegistrationRecord{}, err
	}
	rec.ID = id
	return rec, nil
}

func (r *Registrations) Get(ctx context.Context, id string) (hackathon.RegistrationRecord, error) {
	var rec hackathon.RegistrationRecord
	if err := r.c.Get(ctx, id, &rec); err != nil {
		return hackathon.RegistrationRecord{}, err
	}
	rec.ID = id
	return rec, nil
}

// List returns every registration, newest first.
func (r *Registrations) List(ctx context.Context) ([]hackathon.RegistrationRecord, error) {
	docs, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]hackathon.RegistrationRecord, 0, len(docs))
	for _, d := range docs {
		var rec hackathon.RegistrationRecord
		if err := json.Unmarshal(d.Data, &rec); err != nil {
			return nil, fmt.Errorf("decoding registration %s: %w", d.ID, err)
		}
		rec.ID = d.ID
		if rec.SubmittedAt.IsZero() {
			rec.SubmittedAt = d.CreatedAt
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Registrations) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}
