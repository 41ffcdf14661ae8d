package invoice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNotFound is returned when no record matches the requested invoice number.
var ErrNotFound = errors.New("invoice not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice

// Repository is the durable key-value medium backing the profile, draft and
// collection slots. Reads take a fallback and never fail; writes are
// best-effort and never report errors. Each slot is independent.
type Repository interface {
	Profile(fallback CompanyProfile) CompanyProfile
	SaveProfile(p CompanyProfile)
	Draft(fallback *Invoice) *Invoice
	SaveDraft(d *Invoice)
	Collection() []Invoice
	SaveCollection(list []Invoice)
}

// Syncer mirrors the invoice collection to an optional remote service. The
// result is advisory only; callers continue regardless.
type Syncer interface {
	Push(ctx context.Context, list []Invoice) error
}

// Service owns the invoice collection, the draft and the company profile,
// persisting every mutation through the repository.
type Service struct {
	repo   Repository
	syncer Syncer
}

func NewService(repo Repository, syncer Syncer) *Service {
	return &Service{repo: repo, syncer: syncer}
}

// LoadProfile reads the persisted profile, defaulting to an empty profile on
// first run.
func (s *Service) LoadProfile() CompanyProfile {
	return s.repo.Profile(CompanyProfile{})
}

// LoadDraft reads the persisted draft, creating a fresh one seeded from the
// profile when none exists.
func (s *Service) LoadDraft(currency string) *Invoice {
	return s.repo.Draft(NewDraft(s.LoadProfile(), currency))
}

// SaveDraft persists the in-progress draft.
func (s *Service) SaveDraft(d *Invoice) {
	s.repo.SaveDraft(d)
}

// UpdateProfile persists the profile and reconciles it into the draft:
// non-empty profile fields overwrite the draft's issuer snapshot, empty ones
// leave the draft untouched. The draft is re-persisted afterwards.
func (s *Service) UpdateProfile(p CompanyProfile, draft *Invoice) {
	s.repo.SaveProfile(p)
	draft.ApplyProfile(p, draft.Currency)
	s.repo.SaveDraft(draft)
}

// SetCurrency switches the draft's active currency and re-runs profile
// reconciliation, since the currency always adopts the new value.
func (s *Service) SetCurrency(draft *Invoice, currency string) {
	draft.ApplyProfile(s.LoadProfile(), currency)
	s.repo.SaveDraft(draft)
}

// Upsert saves the invoice into the collection keyed by invoice number: any
// existing record with the same key is removed and the new record is
// prepended, so the collection holds exactly one record per key,
// newest-saved-first. The updated collection is persisted and mirrored.
func (s *Service) Upsert(ctx context.Context, inv *Invoice) []Invoice {
	list := s.repo.Collection()

	out := make([]Invoice, 0, len(list)+1)
	out = append(out, *inv.Clone())

	for _, rec := range list {
		if rec.InvoiceNo == inv.InvoiceNo {
			continue
		}

		out = append(out, rec)
	}

	s.repo.SaveCollection(out)
	s.mirror(ctx, out)

	return out
}

// Delete removes the record with the given invoice number. Deleting an absent
// key is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, invoiceNo string) []Invoice {
	list := s.repo.Collection()

	out := make([]Invoice, 0, len(list))

	for _, rec := range list {
		if rec.InvoiceNo == invoiceNo {
			continue
		}

		out = append(out, rec)
	}

	s.repo.SaveCollection(out)
	s.mirror(ctx, out)

	return out
}

// Collection returns the persisted invoice collection, newest-saved-first.
func (s *Service) Collection() []Invoice {
	return s.repo.Collection()
}

// OpenForEdit loads the record with the given key into the draft slot. The
// record is cloned first so draft edits never mutate the stored entry until
// an explicit save.
func (s *Service) OpenForEdit(invoiceNo string) (*Invoice, error) {
	rec, err := FindByKey(s.repo.Collection(), invoiceNo)
	if err != nil {
		return nil, err
	}

	s.repo.SaveDraft(rec)

	return rec, nil
}

// mirror pushes the collection to the remote in the background. Callers must
// never wait on the network; the push outlives the caller's cancellation and
// failures are logged and ignored.
func (s *Service) mirror(ctx context.Context, list []Invoice) {
	go func() {
		if err := s.syncer.Push(context.WithoutCancel(ctx), list); err != nil {
			slog.Debug("remote mirror failed", "error", err)
		}
	}()
}

// searchFields returns the values the free-text search matches against.
func searchFields(rec *Invoice) []string {
	return []string{
		rec.InvoiceNo,
		rec.ClientName,
		string(rec.PaymentStatus),
		rec.InvoiceDate,
		rec.DueDate,
	}
}

// Search filters the collection by a free-text query. An empty or whitespace
// query returns the collection unchanged. Otherwise a record matches when the
// lowercased query is a substring of its invoice number, client name, payment
// status, invoice date or due date.
func Search(list []Invoice, query string) []Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	var out []Invoice

	for _, rec := range list {
		for _, field := range searchFields(&rec) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, rec)
				break
			}
		}
	}

	return out
}

// FindByKey returns a clone of the first record with the given invoice
// number, or ErrNotFound.
func FindByKey(list []Invoice, invoiceNo string) (*Invoice, error) {
	for i := range list {
		if list[i].InvoiceNo == invoiceNo {
			return list[i].Clone(), nil
		}
	}

	return nil, ErrNotFound
}
