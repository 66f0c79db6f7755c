package dashboards

import (
	"context"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
	"storefront-client/storage"
)

// ---- stub auth (sessions under test never talk to the API) ----

type stubAuthAPI struct{}

func (stubAuthAPI) Login(context.Context, string, string) (*models.Credentials, error) {
	return nil, nil
}
func (stubAuthAPI) Register(context.Context, models.RegisterRequest) (*models.Credentials, error) {
	return nil, nil
}
func (stubAuthAPI) Profile(context.Context, string) (*models.User, error)  { return nil, nil }
func (stubAuthAPI) UpdateProfile(context.Context, string, models.User) (*models.User, error) {
	return nil, nil
}

func testSession() *session.Session {
	return session.New(stubAuthAPI{}, storage.NewMemoryStorage(), zap.NewNop())
}

// ---- mock product API ----

type mockProductAPI struct {
	list      []models.Product
	listErr   error
	listCalls int

	created   *models.Product
	createErr error
	updateErr error
	deleteErr error

	uploaded  []string
	uploadErr error
}

func (m *mockProductAPI) List(context.Context, string, clients.ListOptions) ([]models.Product, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockProductAPI) Get(_ context.Context, _, id string) (*models.Product, error) {
	for i := range m.list {
		if m.list[i].ID == id {
			return &m.list[i], nil
		}
	}
	return nil, ErrNotInCatalog
}

func (m *mockProductAPI) Create(_ context.Context, _ string, payload models.ProductPayload) (*models.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &models.Product{ID: "new", Name: payload.Name, Price: payload.Price}, nil
}

func (m *mockProductAPI) Update(_ context.Context, _, id string, payload models.ProductPayload) (*models.Product, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &models.Product{ID: id, Name: payload.Name, Price: payload.Price}, nil
}

func (m *mockProductAPI) Delete(context.Context, string, string) error { return m.deleteErr }

func (m *mockProductAPI) UploadPhotos(_ context.Context, _, _ string, photos []clients.Photo) ([]string, error) {
	return m.uploaded, m.uploadErr
}

// ---- mock order API ----

type mockOrderAPI struct {
	created   *models.Order
	createErr error
	lastReq   models.CreateOrderRequest

	list      []models.Order
	listErr   error
	listCalls int

	updated       *models.Order
	updateErr     error
	lastStatus    string
	updatedOrders []string
}

func (m *mockOrderAPI) Create(_ context.Context, _ string, req models.CreateOrderRequest) (*models.Order, error) {
	m.lastReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &models.Order{ID: "o1", Status: models.OrderStatusPending, Items: req.Items}, nil
}

func (m *mockOrderAPI) List(context.Context, string) ([]models.Order, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockOrderAPI) UpdateStatus(_ context.Context, _, id, status string) (*models.Order, error) {
	m.lastStatus = status
	m.updatedOrders = append(m.updatedOrders, id)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated != nil {
		return m.updated, nil
	}
	return &models.Order{ID: id, Status: status}, nil
}

func (m *mockOrderAPI) Cancel(_ context.Context, _, id string) (*models.Order, error) {
	return &models.Order{ID: id, Status: models.OrderStatusCancelled}, nil
}

// ---- mock withdrawal API ----

type mockWithdrawalAPI struct {
	list      []models.Withdrawal
	listErr   error
	listCalls int

	created    *models.Withdrawal
	createErr  error
	approveErr error
	rejectErr  error
}

func (m *mockWithdrawalAPI) Create(_ context.Context, _ string, amount float64) (*models.Withdrawal, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &models.Withdrawal{ID: "w1", Amount: amount, Status: models.WithdrawalStatusPending}, nil
}

func (m *mockWithdrawalAPI) List(context.Context, string) ([]models.Withdrawal, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockWithdrawalAPI) Approve(_ context.Context, _, id string) (*models.Withdrawal, error) {
	if m.approveErr != nil {
		return nil, m.approveErr
	}
	return &models.Withdrawal{ID: id, Status: models.WithdrawalStatusApproved}, nil
}

func (m *mockWithdrawalAPI) Reject(_ context.Context, _, id string) (*models.Withdrawal, error) {
	if m.rejectErr != nil {
		return nil, m.rejectErr
	}
	return &models.Withdrawal{ID: id, Status: models.WithdrawalStatusRejected}, nil
}

// ---- mock referral API ----

type mockReferralAPI struct {
	links      []models.ReferralLink
	linksErr   error
	linksCalls int

	created *models.ReferralLink
	stats   *models.ReferralStats
}

func (m *mockReferralAPI) CreateLink(_ context.Context, _, productID string) (*models.ReferralLink, error) {
	if m.created != nil {
		return m.created, nil
	}
	return &models.ReferralLink{ID: "l-new", Code: "NEW", ProductID: productID, Active: true}, nil
}

func (m *mockReferralAPI) Links(context.Context, string) ([]models.ReferralLink, error) {
	m.linksCalls++
	if m.linksErr != nil {
		return nil, m.linksErr
	}
	return m.links, nil
}

func (m *mockReferralAPI) ToggleLink(_ context.Context, _, id string) (*models.ReferralLink, error) {
	return &models.ReferralLink{ID: id, Code: "REF", Active: false}, nil
}

func (m *mockReferralAPI) Stats(context.Context, string) (*models.ReferralStats, error) {
	if m.stats != nil {
		return m.stats, nil
	}
	return &models.ReferralStats{}, nil
}

func (m *mockReferralAPI) Analytics(context.Context, string) ([]models.ReferralDay, error) {
	return nil, nil
}

func (m *mockReferralAPI) Balance(context.Context, string) (*models.ReferralBalance, error) {
	return &models.ReferralBalance{}, nil
}

func (m *mockReferralAPI) Payouts(context.Context, string) ([]models.ReferralPayout, error) {
	return nil, nil
}
