package invoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

func newTestService(t *testing.T) (*invoice.Service, *invoice.MockRepository, *invoice.MockSyncer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	syncer := invoice.NewMockSyncer(ctrl)

	return invoice.NewService(repo, syncer), repo, syncer
}

// expectPush arms one background push expectation and returns a channel that
// closes once the push has run, so tests can wait for it before the mock
// controller's teardown check.
func expectPush(syncer *invoice.MockSyncer, result error) <-chan struct{} {
	done := make(chan struct{})

	syncer.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []invoice.Invoice) error {
			close(done)
			return result
		})

	return done
}

func TestService_Upsert_IdempotentOnKey(t *testing.T) {
	svc, repo, syncer := newTestService(t)

	var saved []invoice.Invoice

	repo.EXPECT().Collection().
		DoAndReturn(func() []invoice.Invoice { return saved }).
		Times(2)
	repo.EXPECT().SaveCollection(gomock.Any()).
		Do(func(list []invoice.Invoice) { saved = list }).
		Times(2)
	firstPush := expectPush(syncer, nil)

	svc.Upsert(context.Background(), &invoice.Invoice{InvoiceNo: "INV-1", ClientName: "Acme Corp"})
	<-firstPush

	secondPush := expectPush(syncer, nil)

	got := svc.Upsert(context.Background(), &invoice.Invoice{InvoiceNo: "INV-1", ClientName: "Acme Corp Ltd"})
	<-secondPush

	require.Len(t, got, 1)
	assert.Equal(t, "INV-1", got[0].InvoiceNo)
	assert.Equal(t, "Acme Corp Ltd", got[0].ClientName)
}

func TestService_Upsert_PrependsNewestFirst(t *testing.T) {
	svc, repo, syncer := newTestService(t)

	existing := []invoice.Invoice{
		{InvoiceNo: "INV-2"},
		{InvoiceNo: "INV-1"},
	}

	repo.EXPECT().Collection().Return(existing)
	repo.EXPECT().SaveCollection(gomock.Any())
	pushed := expectPush(syncer, nil)

	got := svc.Upsert(context.Background(), &invoice.Invoice{InvoiceNo: "INV-3"})
	<-pushed

	require.Len(t, got, 3)
	assert.Equal(t, "INV-3", got[0].InvoiceNo)
	assert.Equal(t, "INV-2", got[1].InvoiceNo)
	assert.Equal(t, "INV-1", got[2].InvoiceNo)
}

func TestService_Upsert_SyncFailureIsSwallowed(t *testing.T) {
	svc, repo, syncer := newTestService(t)

	repo.EXPECT().Collection().Return(nil)
	repo.EXPECT().SaveCollection(gomock.Any())
	pushed := expectPush(syncer, assert.AnError)

	got := svc.Upsert(context.Background(), &invoice.Invoice{InvoiceNo: "INV-1"})
	<-pushed

	require.Len(t, got, 1)
}

func TestService_Upsert_DoesNotBlockOnSlowMirror(t *testing.T) {
	svc, repo, syncer := newTestService(t)

	repo.EXPECT().Collection().Return(nil)
	repo.EXPECT().SaveCollection(gomock.Any())

	release := make(chan struct{})
	done := make(chan struct{})

	syncer.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []invoice.Invoice) error {
			<-release
			close(done)
			return nil
		})

	// Upsert must return while the push is still parked on the channel.
	got := svc.Upsert(context.Background(), &invoice.Invoice{InvoiceNo: "INV-1"})
	require.Len(t, got, 1)

	close(release)
	<-done
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name     string
		existing []invoice.Invoice
		key      string
		wantKeys []string
	}

	tests := []testCase{
		{
			name:     "RemovesByKey",
			existing: []invoice.Invoice{{InvoiceNo: "INV-2"}, {InvoiceNo: "INV-1"}},
			key:      "INV-2",
			wantKeys: []string{"INV-1"},
		},
		{
			name:     "AbsentKeyIsNoop",
			existing: []invoice.Invoice{{InvoiceNo: "INV-1"}},
			key:      "INV-404",
			wantKeys: []string{"INV-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, syncer := newTestService(t)

			repo.EXPECT().Collection().Return(tt.existing)
			repo.EXPECT().SaveCollection(gomock.Any())
			pushed := expectPush(syncer, nil)

			got := svc.Delete(context.Background(), tt.key)
			<-pushed

			require.Len(t, got, len(tt.wantKeys))
			for i, key := range tt.wantKeys {
				assert.Equal(t, key, got[i].InvoiceNo)
			}
		})
	}
}

func TestService_UpdateProfile_Reconciliation(t *testing.T) {
	svc, repo, _ := newTestService(t)

	draft := &invoice.Invoice{
		CompanyProfile: invoice.CompanyProfile{CompanyAddress: "Old Addr", CompanyName: "Old Co"},
		Currency:       "USD",
	}

	// Empty profile fields must not clobber the draft's manual edits.
	emptyAddr := invoice.CompanyProfile{CompanyName: "New Co", CompanyAddress: ""}

	repo.EXPECT().SaveProfile(emptyAddr)
	repo.EXPECT().SaveDraft(draft)

	svc.UpdateProfile(emptyAddr, draft)

	assert.Equal(t, "Old Addr", draft.CompanyAddress)
	assert.Equal(t, "New Co", draft.CompanyName)

	newAddr := invoice.CompanyProfile{CompanyAddress: "New Addr"}

	repo.EXPECT().SaveProfile(newAddr)
	repo.EXPECT().SaveDraft(draft)

	svc.UpdateProfile(newAddr, draft)

	assert.Equal(t, "New Addr", draft.CompanyAddress)
	assert.Equal(t, "New Co", draft.CompanyName)
	assert.Equal(t, "USD", draft.Currency)
}

func TestService_SetCurrency(t *testing.T) {
	svc, repo, _ := newTestService(t)

	draft := &invoice.Invoice{
		CompanyProfile: invoice.CompanyProfile{CompanyName: "Old Co"},
		Currency:       "USD",
	}

	repo.EXPECT().Profile(gomock.Any()).Return(invoice.CompanyProfile{CompanyName: "New Co"})
	repo.EXPECT().SaveDraft(draft)

	svc.SetCurrency(draft, "EUR")

	assert.Equal(t, "EUR", draft.Currency)
	assert.Equal(t, "New Co", draft.CompanyName)
}

func TestService_OpenForEdit_ClonesRecord(t *testing.T) {
	svc, repo, _ := newTestService(t)

	stored := []invoice.Invoice{{
		InvoiceNo:  "INV-1",
		ClientName: "Acme Corp",
		Items:      []invoice.LineItem{{Description: "Widget", Quantity: 2, UnitRate: 10}},
	}}

	repo.EXPECT().Collection().Return(stored)
	repo.EXPECT().SaveDraft(gomock.Any())

	draft, err := svc.OpenForEdit("INV-1")
	require.NoError(t, err)

	draft.ClientName = "Changed"
	draft.Items[0].Quantity = 99

	assert.Equal(t, "Acme Corp", stored[0].ClientName)
	assert.InDelta(t, 2, stored[0].Items[0].Quantity, 1e-9)
}

func TestService_OpenForEdit_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.EXPECT().Collection().Return(nil)

	_, err := svc.OpenForEdit("INV-404")
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestSearch(t *testing.T) {
	list := []invoice.Invoice{
		{InvoiceNo: "INV-10", ClientName: "Acme Corp", PaymentStatus: invoice.StatusUnpaid, InvoiceDate: "2026-08-01", DueDate: "2026-09-01"},
		{InvoiceNo: "INV-11", ClientName: "Globex", PaymentStatus: invoice.StatusPaid, InvoiceDate: "2026-07-15", DueDate: "2026-08-15"},
		{InvoiceNo: "INV-12", ClientName: "Initech", PaymentStatus: invoice.StatusPartiallyPaid, InvoiceDate: "2026-06-30", DueDate: "2026-07-30"},
	}

	type testCase struct {
		name     string
		query    string
		wantKeys []string
	}

	tests := []testCase{
		{name: "EmptyQueryIsIdentity", query: "", wantKeys: []string{"INV-10", "INV-11", "INV-12"}},
		{name: "WhitespaceQueryIsIdentity", query: "   ", wantKeys: []string{"INV-10", "INV-11", "INV-12"}},
		{name: "CaseInsensitiveClientName", query: "acme", wantKeys: []string{"INV-10"}},
		{name: "InvoiceNoSubstring", query: "inv-1", wantKeys: []string{"INV-10", "INV-11", "INV-12"}},
		{name: "PaymentStatus", query: "partially", wantKeys: []string{"INV-12"}},
		{name: "DueDate", query: "2026-08-15", wantKeys: []string{"INV-11"}},
		{name: "NoMatch", query: "zzz", wantKeys: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.Search(list, tt.query)

			require.Len(t, got, len(tt.wantKeys))
			for i, key := range tt.wantKeys {
				assert.Equal(t, key, got[i].InvoiceNo)
			}
		})
	}
}

func TestFindByKey(t *testing.T) {
	list := []invoice.Invoice{
		{InvoiceNo: "INV-1", ClientName: "Acme Corp"},
		{InvoiceNo: "INV-2", ClientName: "Globex"},
	}

	rec, err := invoice.FindByKey(list, "INV-2")
	require.NoError(t, err)
	assert.Equal(t, "Globex", rec.ClientName)

	_, err = invoice.FindByKey(list, "INV-3")
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}
