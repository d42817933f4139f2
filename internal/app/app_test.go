package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T, signupGrant int64) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	return &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		Redis:   config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port},
		JWT: config.JWTConfig{
			Secret: "e2e-secret-that-is-long-enough-for-hs256",
			Expiry: time.Hour,
			Issuer: "coin-ledger-test",
		},
		Ledger: config.LedgerConfig{
			SignupGrant:       signupGrant,
			DefaultActionCost: 1,
			ActionCosts:       map[string]int64{domain.ActionProfitLossReport: 3},
			PurchasePackages:  []int64{10, 50, 100},
			HistoryLimit:      50,
		},
	}
}

type testApp struct {
	t   *testing.T
	app *App
}

func newTestApp(t *testing.T, signupGrant int64) *testApp {
	t.Helper()
	a, err := New(context.Background(), testConfig(t, signupGrant), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return &testApp{t: t, app: a}
}

type result struct {
	Code      int
	Data      json.RawMessage
	ErrorCode string
}

func (ta *testApp) call(method, path, token string, body interface{}) result {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ta.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ta.app.Router.ServeHTTP(w, req)

	var env struct {
		Data      json.RawMessage `json:"data"`
		ErrorCode string          `json:"error_code"`
	}
	if w.Body.Len() > 0 {
		require.NoError(ta.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return result{Code: w.Code, Data: env.Data, ErrorCode: env.ErrorCode}
}

func (ta *testApp) into(r result, v interface{}) {
	require.NoError(ta.t, json.Unmarshal(r.Data, v))
}

func (ta *testApp) register(username string) ports.RegisterResponse {
	r := ta.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct-horse",
	})
	require.Equal(ta.t, http.StatusCreated, r.Code, r.ErrorCode)
	var resp ports.RegisterResponse
	ta.into(r, &resp)
	return resp
}

func (ta *testApp) login(username string) string {
	r := ta.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "correct-horse",
	})
	require.Equal(ta.t, http.StatusOK, r.Code, r.ErrorCode)
	var resp struct {
		Token string `json:"token"`
	}
	ta.into(r, &resp)
	return resp.Token
}

// admin creates an administrator the way the create-admin command does.
func (ta *testApp) admin(username string) string {
	_, err := ta.app.AuthSvc.Register(context.Background(), ports.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
		Role:     domain.RoleAdmin,
	})
	require.NoError(ta.t, err)
	return ta.login(username)
}

func (ta *testApp) balance(token string) int64 {
	r := ta.call(http.MethodGet, "/api/v1/coins/balance", token, nil)
	require.Equal(ta.t, http.StatusOK, r.Code)
	var resp struct {
		Balance int64 `json:"balance"`
	}
	ta.into(r, &resp)
	return resp.Balance
}

type page struct {
	Items      json.RawMessage `json:"items"`
	TotalItems int64           `json:"total_items"`
}

func (ta *testApp) reconcile(adminToken, accountID string) domain.Reconciliation {
	r := ta.call(http.MethodGet, "/api/v1/admin/accounts/"+accountID+"/reconcile", adminToken, nil)
	require.Equal(ta.t, http.StatusOK, r.Code)
	var rec domain.Reconciliation
	ta.into(r, &rec)
	return rec
}

type meteredBody struct {
	CoinsCharged int64 `json:"coins_charged"`
	Balance      int64 `json:"balance"`
}

func TestSignupGrantAndMeteredActions(t *testing.T) {
	ta := newTestApp(t, 10)

	reg := ta.register("Alice")
	assert.Equal(t, "alice", reg.Account.ID)
	assert.Equal(t, int64(10), reg.Account.CoinBalance)
	require.NotNil(t, reg.SignupGrant)
	assert.Equal(t, domain.EntryKindCredit, reg.SignupGrant.Kind)
	assert.True(t, strings.HasPrefix(reg.SignupGrant.Reference, domain.RefPrefixSignup+"_"))

	alice := ta.login("alice")

	r := ta.call(http.MethodPost, "/api/v1/invoices", alice, map[string]string{"customer_name": "Acme", "amount": "120.50"})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)
	var charged meteredBody
	ta.into(r, &charged)
	assert.Equal(t, meteredBody{CoinsCharged: 1, Balance: 9}, charged)

	// the profit & loss report is priced at 3
	r = ta.call(http.MethodGet, "/api/v1/reports/profit-loss", alice, nil)
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)
	ta.into(r, &charged)
	assert.Equal(t, meteredBody{CoinsCharged: 3, Balance: 6}, charged)

	assert.Equal(t, int64(6), ta.balance(alice))

	r = ta.call(http.MethodGet, "/api/v1/coins/history", alice, nil)
	require.Equal(t, http.StatusOK, r.Code)
	var hist page
	ta.into(r, &hist)
	assert.Equal(t, int64(3), hist.TotalItems)
	var entries []domain.LedgerEntry
	require.NoError(t, json.Unmarshal(hist.Items, &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, int64(-3), entries[0].Amount)
	assert.True(t, strings.HasPrefix(entries[0].Reference, domain.ActionProfitLossReport+"_"))
	assert.Equal(t, domain.EntryKindSpend, entries[1].Kind)
	assert.Equal(t, int64(10), entries[2].Amount)

	r = ta.call(http.MethodGet, "/api/v1/invoices", alice, nil)
	var invoices page
	ta.into(r, &invoices)
	assert.Equal(t, int64(1), invoices.TotalItems)
}

func TestInsufficientBalance_NothingWritten(t *testing.T) {
	ta := newTestApp(t, 0)

	reg := ta.register("bob")
	assert.Nil(t, reg.SignupGrant)
	bob := ta.login("bob")

	r := ta.call(http.MethodPost, "/api/v1/invoices", bob, map[string]string{"customer_name": "Acme", "amount": "10"})
	assert.Equal(t, http.StatusPaymentRequired, r.Code)
	assert.Equal(t, "COIN_001", r.ErrorCode)

	r = ta.call(http.MethodPost, "/api/v1/debtors", bob, map[string]string{"name": "Carol", "amount": "5"})
	assert.Equal(t, http.StatusPaymentRequired, r.Code)

	r = ta.call(http.MethodPut, "/api/v1/account", bob, map[string]string{"display_name": "Robert"})
	assert.Equal(t, http.StatusPaymentRequired, r.Code)

	var invoices page
	ta.into(ta.call(http.MethodGet, "/api/v1/invoices", bob, nil), &invoices)
	assert.Zero(t, invoices.TotalItems)

	var contacts []domain.Contact
	ta.into(ta.call(http.MethodGet, "/api/v1/debtors", bob, nil), &contacts)
	assert.Empty(t, contacts)

	var profile domain.Account
	ta.into(ta.call(http.MethodGet, "/api/v1/account", bob, nil), &profile)
	assert.Equal(t, "bob", profile.DisplayName)

	var hist page
	ta.into(ta.call(http.MethodGet, "/api/v1/coins/history", bob, nil), &hist)
	assert.Zero(t, hist.TotalItems)
	assert.Zero(t, ta.balance(bob))
}

func TestAdminCredit_AuditedAndReconciled(t *testing.T) {
	ta := newTestApp(t, 10)

	root := ta.admin("root")
	ta.register("bob")
	bob := ta.login("bob")

	r := ta.call(http.MethodPost, "/api/v1/admin/credits", bob, map[string]interface{}{"account_id": "bob", "amount": 1000})
	assert.Equal(t, http.StatusForbidden, r.Code)

	r = ta.call(http.MethodPost, "/api/v1/admin/credits", root, map[string]interface{}{"account_id": "Bob", "amount": 25})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)
	var applied ports.AppliedEntry
	ta.into(r, &applied)
	assert.Equal(t, int64(35), applied.Balance)
	assert.Equal(t, domain.EntryKindAdminCredit, applied.Entry.Kind)
	assert.True(t, strings.HasPrefix(applied.Entry.Reference, domain.RefPrefixAdminCredit+"_"))

	r = ta.call(http.MethodPost, "/api/v1/admin/credits", root, map[string]interface{}{"account_id": "ghost", "amount": 5})
	assert.Equal(t, http.StatusNotFound, r.Code)

	r = ta.call(http.MethodGet, "/api/v1/admin/audit-logs?action=ADMIN_CREDIT", root, nil)
	require.Equal(t, http.StatusOK, r.Code)
	var audits page
	ta.into(r, &audits)
	require.Equal(t, int64(1), audits.TotalItems)
	var logs []domain.AuditLog
	require.NoError(t, json.Unmarshal(audits.Items, &logs))
	require.NotNil(t, logs[0].AdminID)
	assert.Equal(t, "root", *logs[0].AdminID)
	assert.Equal(t, "bob", logs[0].TargetAccountID)

	assert.Equal(t, int64(35), ta.balance(bob))
	rec := ta.reconcile(root, "bob")
	assert.True(t, rec.Consistent)
	assert.Equal(t, int64(35), rec.LedgerSum)
	assert.Equal(t, int64(2), rec.EntryCount)
}

func TestPurchaseReplay(t *testing.T) {
	ta := newTestApp(t, 10)
	ta.register("alice")
	alice := ta.login("alice")

	buy := map[string]interface{}{"amount": 50, "payment_method": "card", "payment_reference": "order-1"}

	r := ta.call(http.MethodPost, "/api/v1/coins/purchase", alice, buy)
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)
	var first ports.PurchaseResult
	ta.into(r, &first)
	assert.Equal(t, int64(60), first.Balance)
	assert.False(t, first.Replayed)

	r = ta.call(http.MethodPost, "/api/v1/coins/purchase", alice, buy)
	require.Equal(t, http.StatusOK, r.Code)
	var again ports.PurchaseResult
	ta.into(r, &again)
	assert.True(t, again.Replayed)
	assert.Equal(t, first.Entry.ID, again.Entry.ID)

	assert.Equal(t, int64(60), ta.balance(alice))

	r = ta.call(http.MethodPost, "/api/v1/coins/purchase", alice,
		map[string]interface{}{"amount": 10, "payment_method": "card", "payment_reference": "order-1"})
	assert.Equal(t, http.StatusConflict, r.Code)

	r = ta.call(http.MethodPost, "/api/v1/coins/purchase", alice, map[string]interface{}{"amount": 7, "payment_method": "card"})
	assert.Equal(t, http.StatusBadRequest, r.Code)

	assert.Equal(t, int64(60), ta.balance(alice))
}

func TestConcurrentMeteredActions_NeverOverspend(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.register("alice")
	alice := ta.login("alice")

	const attempts = 25
	codes := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]interface{}{"name": "item-" + strconv.Itoa(i), "quantity": 1})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+alice)
			w := httptest.NewRecorder()
			ta.app.Router.ServeHTTP(w, req)
			codes <- w.Code
		}(i)
	}
	wg.Wait()
	close(codes)

	counts := map[int]int{}
	for c := range codes {
		counts[c]++
	}
	assert.Equal(t, 10, counts[http.StatusCreated])
	assert.Equal(t, attempts-10, counts[http.StatusPaymentRequired])

	assert.Zero(t, ta.balance(alice))

	var items []domain.InventoryItem
	ta.into(ta.call(http.MethodGet, "/api/v1/inventory", alice, nil), &items)
	assert.Len(t, items, 10)

	rec := ta.reconcile(root, "alice")
	assert.True(t, rec.Consistent)
	assert.Equal(t, int64(11), rec.EntryCount)
}

func TestSuspendAndDelete(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.register("carol")
	carol := ta.login("carol")

	r := ta.call(http.MethodPost, "/api/v1/receipts", carol, map[string]string{"party_name": "Dan", "amount": "40"})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)

	r = ta.call(http.MethodPut, "/api/v1/admin/accounts/carol/suspend", root, map[string]bool{"suspended": true})
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)

	r = ta.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "carol", "password": "correct-horse"})
	assert.Equal(t, http.StatusForbidden, r.Code)
	assert.Equal(t, "AUTH_005", r.ErrorCode)

	r = ta.call(http.MethodPut, "/api/v1/admin/accounts/root/suspend", root, map[string]bool{"suspended": true})
	assert.Equal(t, http.StatusBadRequest, r.Code)

	r = ta.call(http.MethodDelete, "/api/v1/admin/accounts/carol", root, nil)
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)

	r = ta.call(http.MethodGet, "/api/v1/coins/balance", carol, nil)
	assert.Equal(t, http.StatusNotFound, r.Code)

	r = ta.call(http.MethodGet, "/api/v1/admin/ledger?account_id=carol", root, nil)
	var entries page
	ta.into(r, &entries)
	assert.Zero(t, entries.TotalItems)

	var audits page
	ta.into(ta.call(http.MethodGet, "/api/v1/admin/audit-logs?account_id=carol", root, nil), &audits)
	var logs []domain.AuditLog
	require.NoError(t, json.Unmarshal(audits.Items, &logs))
	actions := map[domain.AuditAction]bool{}
	for _, l := range logs {
		actions[l.Action] = true
	}
	assert.True(t, actions[domain.AuditActionSuspendAccount])
	assert.True(t, actions[domain.AuditActionDeleteAccount])

	var dash ports.AdminDashboard
	ta.into(ta.call(http.MethodGet, "/api/v1/admin/dashboard", root, nil), &dash)
	assert.Equal(t, int64(1), dash.TotalAccounts)
}

// ledgerView is what an account owner and an administrator can read about
// one account's coins.
type ledgerView struct {
	Balance   int64
	History   int64
	Reconcile domain.Reconciliation
}

func (ta *testApp) view(owner, adminToken, accountID string) ledgerView {
	r := ta.call(http.MethodGet, "/api/v1/coins/history", owner, nil)
	require.Equal(ta.t, http.StatusOK, r.Code)
	var hist page
	ta.into(r, &hist)

	rec := ta.reconcile(adminToken, accountID)
	rec.CheckedAt = time.Time{}
	return ledgerView{Balance: ta.balance(owner), History: hist.TotalItems, Reconcile: rec}
}

func TestReadsLeaveTheLedgerUnchanged(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.register("alice")
	alice := ta.login("alice")

	r := ta.call(http.MethodPost, "/api/v1/invoices", alice, map[string]string{"customer_name": "Acme", "amount": "10"})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)

	before := ta.view(alice, root, "alice")
	assert.Equal(t, int64(9), before.Balance)
	assert.Equal(t, int64(2), before.History)
	assert.True(t, before.Reconcile.Consistent)

	for i := 0; i < 3; i++ {
		assert.Equal(t, before, ta.view(alice, root, "alice"), "read %d", i+1)
	}

	ctx := context.Background()
	debit := func(tx pgx.Tx) {
		_, err := ta.app.stores.accounts.AdjustBalance(ctx, tx, "alice", -4)
		require.NoError(t, err)
		require.NoError(t, ta.app.stores.entries.Append(ctx, tx, &domain.LedgerEntry{
			ID:        uuid.New(),
			AccountID: "alice",
			Amount:    -4,
			Kind:      domain.EntryKindSpend,
			Reference: "manual_" + uuid.NewString(),
			CreatedAt: time.Now().UTC(),
		}))
	}

	// uncommitted writes stay out of every read
	tx, err := ta.app.stores.transactor.Begin(ctx)
	require.NoError(t, err)
	debit(tx)
	assert.Equal(t, before, ta.view(alice, root, "alice"))
	require.NoError(t, tx.Rollback(ctx))
	assert.Equal(t, before, ta.view(alice, root, "alice"))

	tx, err = ta.app.stores.transactor.Begin(ctx)
	require.NoError(t, err)
	debit(tx)
	assert.Equal(t, before, ta.view(alice, root, "alice"))
	require.NoError(t, tx.Commit(ctx))

	after := ta.view(alice, root, "alice")
	assert.Equal(t, int64(5), after.Balance)
	assert.Equal(t, int64(3), after.History)
	assert.True(t, after.Reconcile.Consistent)
	assert.Equal(t, after, ta.view(alice, root, "alice"))
}

func TestRecordEditsAndDeletesAreFree(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.register("dana")
	dana := ta.login("dana")
	ta.register("eve")
	eve := ta.login("eve")

	r := ta.call(http.MethodPost, "/api/v1/inventory", dana, map[string]interface{}{"name": "Rice", "quantity": 10, "unit": "kg"})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)
	var created struct {
		Result domain.InventoryItem `json:"result"`
	}
	ta.into(r, &created)
	itemPath := "/api/v1/inventory/" + created.Result.ID.String()

	r = ta.call(http.MethodPut, itemPath, dana, map[string]interface{}{"quantity": 4})
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)
	var item domain.InventoryItem
	ta.into(r, &item)
	assert.Equal(t, int64(4), item.Quantity)
	assert.Equal(t, "Rice", item.Name)

	// another account's record is not found
	r = ta.call(http.MethodPut, itemPath, eve, map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, r.Code)
	r = ta.call(http.MethodDelete, itemPath, eve, nil)
	assert.Equal(t, http.StatusNotFound, r.Code)

	r = ta.call(http.MethodPut, "/api/v1/inventory/not-a-uuid", dana, map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, r.Code)

	r = ta.call(http.MethodDelete, itemPath, dana, nil)
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)
	r = ta.call(http.MethodDelete, itemPath, dana, nil)
	assert.Equal(t, http.StatusNotFound, r.Code)

	assert.Equal(t, int64(9), ta.balance(dana))

	r = ta.call(http.MethodPost, "/api/v1/receipts", dana, map[string]string{"party_name": "Fred", "amount": "25"})
	require.Equal(t, http.StatusCreated, r.Code, r.ErrorCode)
	var receipt struct {
		Result domain.Cashflow `json:"result"`
	}
	ta.into(r, &receipt)

	// a receipt is not reachable as a payment
	r = ta.call(http.MethodDelete, "/api/v1/admin/records/payment/"+receipt.Result.ID.String(), root, nil)
	assert.Equal(t, http.StatusNotFound, r.Code)

	r = ta.call(http.MethodDelete, "/api/v1/admin/records/receipt/"+receipt.Result.ID.String(), root, nil)
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)

	r = ta.call(http.MethodGet, "/api/v1/receipts", dana, nil)
	require.Equal(t, http.StatusOK, r.Code)
	var receipts []domain.Cashflow
	ta.into(r, &receipts)
	assert.Empty(t, receipts)

	var audits page
	ta.into(ta.call(http.MethodGet, "/api/v1/admin/audit-logs?action=DELETE_RECORD", root, nil), &audits)
	assert.Equal(t, int64(1), audits.TotalItems)

	r = ta.call(http.MethodDelete, "/api/v1/admin/records/receipt/"+receipt.Result.ID.String(), dana, nil)
	assert.Equal(t, http.StatusForbidden, r.Code)

	assert.Equal(t, int64(8), ta.balance(dana))
	assert.True(t, ta.reconcile(root, "dana").Consistent)
}

func TestAdministratorsAreProtected(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.admin("ops")

	r := ta.call(http.MethodPut, "/api/v1/admin/accounts/ops/suspend", root, map[string]bool{"suspended": true})
	assert.Equal(t, http.StatusForbidden, r.Code)
	assert.Equal(t, "AUTH_006", r.ErrorCode)

	r = ta.call(http.MethodDelete, "/api/v1/admin/accounts/ops", root, nil)
	assert.Equal(t, http.StatusForbidden, r.Code)
	assert.Equal(t, "AUTH_006", r.ErrorCode)

	var dash ports.AdminDashboard
	ta.into(ta.call(http.MethodGet, "/api/v1/admin/dashboard", root, nil), &dash)
	assert.Equal(t, int64(2), dash.TotalAccounts)
}

func TestSuspendedAccountCannotSpend(t *testing.T) {
	ta := newTestApp(t, 10)
	root := ta.admin("root")
	ta.register("gil")
	gil := ta.login("gil")

	r := ta.call(http.MethodPut, "/api/v1/admin/accounts/gil/suspend", root, map[string]bool{"suspended": true})
	require.Equal(t, http.StatusOK, r.Code, r.ErrorCode)

	// the token issued before the suspension is still valid
	r = ta.call(http.MethodPost, "/api/v1/invoices", gil, map[string]string{"customer_name": "Acme", "amount": "5"})
	assert.Equal(t, http.StatusForbidden, r.Code)
	assert.Equal(t, "AUTH_005", r.ErrorCode)

	assert.Equal(t, int64(10), ta.balance(gil))
	assert.Equal(t, int64(1), ta.reconcile(root, "gil").EntryCount)
}

func TestAuthRateLimit(t *testing.T) {
	ta := newTestApp(t, 10)

	var last result
	for i := 0; i < 11; i++ {
		last = ta.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "nobody", "password": "wrong-pass"})
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "RATE_001", last.ErrorCode)
}

func TestHealth(t *testing.T) {
	ta := newTestApp(t, 10)

	r := ta.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, r.Code)
}

func TestNew_RequiresSecret(t *testing.T) {
	cfg := testConfig(t, 10)
	cfg.JWT.Secret = ""

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, GinMode("debug"))
	assert.Equal(t, gin.TestMode, GinMode("test"))
	assert.Equal(t, gin.ReleaseMode, GinMode("production"))
}
