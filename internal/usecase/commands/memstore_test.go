//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/withdrawal"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type movement struct {
	UserID    uuid.UUID
	Kind      shared.MovementKind
	Amount    money.Money
	Reference uuid.UUID
}

type outboxEvent struct {
	Topic   string
	Key     uuid.UUID
	Payload []byte
}

type state struct {
	postings     map[uuid.UUID]posting.Posting
	offers       map[uuid.UUID]posting.Offer
	offerOrder   []uuid.UUID
	transactions map[uuid.UUID]transaction.Transaction
	history      []transaction.Transition
	promos       map[string]promo.PromoCode
	usages       []promo.Usage
	payments     map[uuid.UUID]payment.Payment
	withdrawals  map[uuid.UUID]withdrawal.Withdrawal
	balances     map[uuid.UUID]money.Money
	movements    []movement
	services     map[uuid.UUID]shared.ProServiceSnapshot
	reviews      map[uuid.UUID]review.Review
	events       []outboxEvent
	idempotency  map[string]shared.IdempotencyRecord
}

func (s state) clone() state {
	return state{
		postings:     maps.Clone(s.postings),
		offers:       maps.Clone(s.offers),
		offerOrder:   slices.Clone(s.offerOrder),
		transactions: maps.Clone(s.transactions),
		history:      slices.Clone(s.history),
		promos:       maps.Clone(s.promos),
		usages:       slices.Clone(s.usages),
		payments:     maps.Clone(s.payments),
		withdrawals:  maps.Clone(s.withdrawals),
		balances:     maps.Clone(s.balances),
		movements:    slices.Clone(s.movements),
		services:     maps.Clone(s.services),
		reviews:      maps.Clone(s.reviews),
		events:       slices.Clone(s.events),
		idempotency:  maps.Clone(s.idempotency),
	}
}

// memStore is an in-memory UnitOfWork. Entities are stored by value, so a
// failed unit of work is rolled back by restoring the snapshot taken when it
// began.
type memStore struct {
	mu sync.Mutex
	st state
}

var _ shared.UnitOfWork = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{st: state{
		postings:     map[uuid.UUID]posting.Posting{},
		offers:       map[uuid.UUID]posting.Offer{},
		transactions: map[uuid.UUID]transaction.Transaction{},
		promos:       map[string]promo.PromoCode{},
		payments:     map[uuid.UUID]payment.Payment{},
		withdrawals:  map[uuid.UUID]withdrawal.Withdrawal{},
		balances:     map[uuid.UUID]money.Money{},
		services:     map[uuid.UUID]shared.ProServiceSnapshot{},
		reviews:      map[uuid.UUID]review.Review{},
		idempotency:  map[string]shared.IdempotencyRecord{},
	}}
}

func (m *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.st.clone()
	if err := fn(ctx, &memTx{st: &m.st}); err != nil {
		m.st = snapshot
		return err
	}
	return nil
}

func (m *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db shared.DBTX) error) error {
	return fn(ctx, nil)
}

// seeding and inspection helpers

func (m *memStore) putPosting(p *posting.Posting, offers ...*posting.Offer) {
	m.st.postings[p.ID()] = *p
	for _, o := range offers {
		m.st.offers[o.ID()] = *o
		m.st.offerOrder = append(m.st.offerOrder, o.ID())
	}
}

func (m *memStore) putTransaction(t *transaction.Transaction) {
	m.st.transactions[t.ID()] = *t
}

func (m *memStore) putPromo(p *promo.PromoCode) {
	m.st.promos[p.Code().String()] = *p
}

func (m *memStore) putPayment(p *payment.Payment) {
	m.st.payments[p.ID()] = *p
}

func (m *memStore) putService(s shared.ProServiceSnapshot) {
	m.st.services[s.ID] = s
}

func (m *memStore) setBalance(userID uuid.UUID, amount money.Money) {
	m.st.balances[userID] = amount
}

// Inspection helpers return copies so tests cannot mutate stored state.

func (m *memStore) posting(id uuid.UUID) *posting.Posting {
	p := m.st.postings[id]
	return &p
}

func (m *memStore) offer(id uuid.UUID) *posting.Offer {
	o := m.st.offers[id]
	return &o
}

func (m *memStore) transaction(id uuid.UUID) (*transaction.Transaction, bool) {
	t, ok := m.st.transactions[id]
	return &t, ok
}

func (m *memStore) payment(id uuid.UUID) *payment.Payment {
	p := m.st.payments[id]
	return &p
}

func (m *memStore) promo(code string) *promo.PromoCode {
	p := m.st.promos[code]
	return &p
}

func (m *memStore) withdrawal(id uuid.UUID) (*withdrawal.Withdrawal, bool) {
	w, ok := m.st.withdrawals[id]
	return &w, ok
}

func (m *memStore) balance(userID uuid.UUID) money.Money { return m.st.balances[userID] }

func (m *memStore) usageCount() int { return len(m.st.usages) }

func (m *memStore) movementsOf(userID uuid.UUID) []movement {
	var out []movement
	for _, mv := range m.st.movements {
		if mv.UserID == userID {
			out = append(out, mv)
		}
	}
	return out
}

func (m *memStore) paymentsFor(transactionID uuid.UUID) []payment.Payment {
	var out []payment.Payment
	for _, p := range m.st.payments {
		if p.TransactionID() == transactionID {
			out = append(out, p)
		}
	}
	return out
}

func (m *memStore) topics() []string {
	out := make([]string, 0, len(m.st.events))
	for _, e := range m.st.events {
		out = append(out, e.Topic)
	}
	return out
}

func (m *memStore) eventsOn(topic string) []outboxEvent {
	var out []outboxEvent
	for _, e := range m.st.events {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

func (m *memStore) historyOf(transactionID uuid.UUID) []transaction.Transition {
	var out []transaction.Transition
	for _, tr := range m.st.history {
		if tr.TransactionID == transactionID {
			out = append(out, tr)
		}
	}
	return out
}

type memTx struct {
	st *state
}

func (t *memTx) Postings() shared.PostingRepository         { return memPostings{t.st} }
func (t *memTx) Offers() shared.OfferRepository             { return memOffers{t.st} }
func (t *memTx) Transactions() shared.TransactionRepository { return memTransactions{t.st} }
func (t *memTx) PromoCodes() shared.PromoCodeRepository     { return memPromos{t.st} }
func (t *memTx) Payments() shared.PaymentRepository         { return memPayments{t.st} }
func (t *memTx) Withdrawals() shared.WithdrawalRepository   { return memWithdrawals{t.st} }
func (t *memTx) Balances() shared.BalanceRepository         { return memBalances{t.st} }
func (t *memTx) Services() shared.ProServiceRepository      { return memServices{t.st} }
func (t *memTx) Reviews() shared.ReviewRepository           { return memReviews{t.st} }
func (t *memTx) Outbox() shared.OutboxRepository            { return memOutbox{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return memIdempotency{t.st} }
func (t *memTx) DB() shared.DBTX                            { return nil }

func stale(what string, id uuid.UUID) error {
	return errs.Wrapf(errs.ErrInvalidState, "%s %s changed concurrently", what, id)
}

type memPostings struct{ st *state }

func (r memPostings) Create(_ context.Context, p *posting.Posting) error {
	r.st.postings[p.ID()] = *p
	return nil
}

func (r memPostings) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*posting.Posting, error) {
	p, ok := r.st.postings[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "posting %s", id)
	}
	return &p, nil
}

func (r memPostings) UpdateStatus(_ context.Context, p *posting.Posting, from posting.Status) error {
	if cur, ok := r.st.postings[p.ID()]; !ok || cur.Status() != from {
		return stale("posting", p.ID())
	}
	r.st.postings[p.ID()] = *p
	return nil
}

func (r memPostings) ListExpiredOpen(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, p := range r.st.postings {
		if p.IsOpen() && p.IsExpiredAt(now) {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type memOffers struct{ st *state }

func (r memOffers) Create(_ context.Context, o *posting.Offer) error {
	for _, existing := range r.st.offers {
		if existing.PostingID() == o.PostingID() && existing.ProfessionalID() == o.ProfessionalID() && existing.IsPending() {
			return errs.Wrap(errs.ErrConflict, "professional already has a pending offer")
		}
	}
	r.st.offers[o.ID()] = *o
	r.st.offerOrder = append(r.st.offerOrder, o.ID())
	return nil
}

func (r memOffers) FindByID(_ context.Context, id uuid.UUID) (*posting.Offer, error) {
	o, ok := r.st.offers[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "offer %s", id)
	}
	return &o, nil
}

func (r memOffers) ListByPostingForUpdate(_ context.Context, postingID uuid.UUID) ([]*posting.Offer, error) {
	var out []*posting.Offer
	for _, id := range r.st.offerOrder {
		o := r.st.offers[id]
		if o.PostingID() == postingID {
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r memOffers) UpdateStatus(_ context.Context, o *posting.Offer, from posting.OfferStatus) error {
	if cur, ok := r.st.offers[o.ID()]; !ok || cur.Status() != from {
		return stale("offer", o.ID())
	}
	r.st.offers[o.ID()] = *o
	return nil
}

type memTransactions struct{ st *state }

func (r memTransactions) Create(_ context.Context, t *transaction.Transaction, _ string) error {
	if t.OfferID() != nil {
		for _, existing := range r.st.transactions {
			if existing.OfferID() != nil && *existing.OfferID() == *t.OfferID() {
				return errs.Wrap(errs.ErrConflict, "offer already has a transaction")
			}
		}
	}
	r.st.transactions[t.ID()] = *t
	return nil
}

func (r memTransactions) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	t, ok := r.st.transactions[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "transaction %s", id)
	}
	return &t, nil
}

func (r memTransactions) ApplyTransition(_ context.Context, t *transaction.Transaction, tr transaction.Transition) error {
	if cur, ok := r.st.transactions[t.ID()]; !ok || cur.Status() != tr.From {
		return stale("transaction", t.ID())
	}
	r.st.transactions[t.ID()] = *t
	r.st.history = append(r.st.history, tr)
	return nil
}

func (r memTransactions) SetFunding(_ context.Context, t *transaction.Transaction) error {
	if cur, ok := r.st.transactions[t.ID()]; !ok || cur.FundingPaymentID() != nil {
		return stale("transaction", t.ID())
	}
	r.st.transactions[t.ID()] = *t
	return nil
}

type memPromos struct{ st *state }

func (r memPromos) Create(_ context.Context, p *promo.PromoCode) error {
	if _, ok := r.st.promos[p.Code().String()]; ok {
		return errs.Wrapf(errs.ErrConflict, "promo code %s exists", p.Code())
	}
	r.st.promos[p.Code().String()] = *p
	return nil
}

func (r memPromos) FindByCode(_ context.Context, code string) (*promo.PromoCode, error) {
	p, ok := r.st.promos[code]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "promo code %s", code)
	}
	return &p, nil
}

func (r memPromos) FindByCodeForUpdate(ctx context.Context, code string) (*promo.PromoCode, error) {
	return r.FindByCode(ctx, code)
}

func (r memPromos) CountUsages(_ context.Context, codeID, userID uuid.UUID) (int, error) {
	n := 0
	for _, u := range r.st.usages {
		if u.CodeID == codeID && u.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r memPromos) RecordUsage(_ context.Context, u promo.Usage) error {
	for key, p := range r.st.promos {
		if p.ID() != u.CodeID {
			continue
		}
		if p.IsExhausted() {
			return errs.Wrapf(errs.ErrUsageExceeded, "promo code %s", p.Code())
		}
		r.st.promos[key] = *promo.ReconstructPromoCode(
			p.ID(), p.Code().String(), p.Discount(), p.MaxUses(), p.UsesCount()+1, p.MaxUsesPerUser(),
			p.ValidFrom(), p.ValidUntil(), p.TargetCategory(), p.IsActive(), p.CreatedAt(),
		)
		r.st.usages = append(r.st.usages, u)
		return nil
	}
	return errs.Wrapf(errs.ErrNotFound, "promo code %s", u.CodeID)
}

type memPayments struct{ st *state }

func (r memPayments) Create(_ context.Context, p *payment.Payment) error {
	r.st.payments[p.ID()] = *p
	return nil
}

func (r memPayments) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, ok := r.st.payments[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "payment %s", id)
	}
	return &p, nil
}

func (r memPayments) FindCompletedByTransaction(_ context.Context, transactionID uuid.UUID) (*payment.Payment, error) {
	for _, p := range r.st.payments {
		if p.TransactionID() == transactionID && p.IsCompleted() {
			return &p, nil
		}
	}
	return nil, errs.Wrapf(errs.ErrNotFound, "completed payment for %s", transactionID)
}

func (r memPayments) Update(_ context.Context, p *payment.Payment, from payment.Status) error {
	if cur, ok := r.st.payments[p.ID()]; !ok || cur.Status() != from {
		return stale("payment", p.ID())
	}
	if p.IsCompleted() {
		for id, other := range r.st.payments {
			if id != p.ID() && other.TransactionID() == p.TransactionID() && other.IsCompleted() {
				return errs.Wrap(errs.ErrConflict, "transaction already has a completed payment")
			}
		}
	}
	r.st.payments[p.ID()] = *p
	return nil
}

type memWithdrawals struct{ st *state }

func (r memWithdrawals) Create(_ context.Context, w *withdrawal.Withdrawal) error {
	r.st.withdrawals[w.ID()] = *w
	return nil
}

func (r memWithdrawals) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error) {
	w, ok := r.st.withdrawals[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "withdrawal %s", id)
	}
	return &w, nil
}

func (r memWithdrawals) Update(_ context.Context, w *withdrawal.Withdrawal, from withdrawal.Status) error {
	if cur, ok := r.st.withdrawals[w.ID()]; !ok || cur.Status() != from {
		return stale("withdrawal", w.ID())
	}
	r.st.withdrawals[w.ID()] = *w
	return nil
}

type memBalances struct{ st *state }

func (r memBalances) GetForUpdate(_ context.Context, userID uuid.UUID) (money.Money, error) {
	return r.st.balances[userID], nil
}

func (r memBalances) Credit(_ context.Context, userID uuid.UUID, amount money.Money, kind shared.MovementKind, reference uuid.UUID) error {
	if err := r.once(kind, reference); err != nil {
		return err
	}
	r.st.balances[userID] += amount
	r.st.movements = append(r.st.movements, movement{UserID: userID, Kind: kind, Amount: amount, Reference: reference})
	return nil
}

func (r memBalances) Debit(_ context.Context, userID uuid.UUID, amount money.Money, kind shared.MovementKind, reference uuid.UUID) error {
	if err := r.once(kind, reference); err != nil {
		return err
	}
	if r.st.balances[userID] < amount {
		return errs.Wrapf(errs.ErrInsufficientBalance, "user %s", userID)
	}
	r.st.balances[userID] -= amount
	r.st.movements = append(r.st.movements, movement{UserID: userID, Kind: kind, Amount: -amount, Reference: reference})
	return nil
}

func (r memBalances) once(kind shared.MovementKind, reference uuid.UUID) error {
	for _, mv := range r.st.movements {
		if mv.Kind == kind && mv.Reference == reference {
			return errs.Wrapf(errs.ErrConflict, "%s already recorded for %s", kind, reference)
		}
	}
	return nil
}

type memServices struct{ st *state }

func (r memServices) FindByID(_ context.Context, id uuid.UUID) (*shared.ProServiceSnapshot, error) {
	s, ok := r.st.services[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "service %s", id)
	}
	return &s, nil
}

type memReviews struct{ st *state }

func (r memReviews) Create(_ context.Context, rev *review.Review) error {
	if _, ok := r.st.reviews[rev.TransactionID()]; ok {
		return errs.Wrapf(errs.ErrConflict, "transaction %s already reviewed", rev.TransactionID())
	}
	r.st.reviews[rev.TransactionID()] = *rev
	return nil
}

type memOutbox struct{ st *state }

func (r memOutbox) Enqueue(_ context.Context, topic string, key uuid.UUID, payload []byte, _ time.Time) error {
	r.st.events = append(r.st.events, outboxEvent{Topic: topic, Key: key, Payload: payload})
	return nil
}

type memIdempotency struct{ st *state }

func idempotencySlot(key, userID uuid.UUID, endpoint string) string {
	return userID.String() + "|" + endpoint + "|" + key.String()
}

func (r memIdempotency) Find(_ context.Context, key, userID uuid.UUID, endpoint string, now time.Time) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[idempotencySlot(key, userID, endpoint)]
	if !ok || !rec.ExpiresAt.After(now) {
		return nil, errs.Wrapf(errs.ErrNotFound, "idempotency key %s", key)
	}
	return &rec, nil
}

func (r memIdempotency) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	slot := idempotencySlot(rec.Key, rec.UserID, rec.Endpoint)
	if old, ok := r.st.idempotency[slot]; ok && old.ExpiresAt.After(rec.CreatedAt) {
		return errs.Wrapf(errs.ErrConflict, "idempotency key %s", rec.Key)
	}
	r.st.idempotency[slot] = rec
	return nil
}
