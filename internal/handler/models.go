package handler

import (
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a public account representation, without credentials.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the account and its access token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Product is a catalog entry.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	FarmerID     uuid.UUID       `json:"farmer_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	IsActive     bool            `json:"is_active"`
	IsOrganic    bool            `json:"is_organic"`
	Rating       decimal.Decimal `json:"rating"`
	TotalReviews int             `json:"total_reviews"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CartItem is one line of the consumer's cart.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart is the consumer's cart with totals.
type Cart struct {
	ID         uuid.UUID       `json:"id"`
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderItem is one purchased product line.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is a single-farmer order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	ConsumerID      uuid.UUID       `json:"consumer_id"`
	FarmerID        uuid.UUID       `json:"farmer_id"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	Items           []OrderItem     `json:"items,omitempty"`
}

// Wallet is a farmer's earnings balance.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	FarmerID       uuid.UUID       `json:"farmer_id"`
	Balance        decimal.Decimal `json:"balance"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
}

// WalletTransaction is one ledger entry.
type WalletTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	OrderID     *uuid.UUID      `json:"order_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EarningsSummary is the farmer earnings dashboard.
type EarningsSummary struct {
	Balance            decimal.Decimal     `json:"balance"`
	TotalEarned        decimal.Decimal     `json:"total_earned"`
	TotalWithdrawn     decimal.Decimal     `json:"total_withdrawn"`
	PendingWithdrawals decimal.Decimal     `json:"pending_withdrawals"`
	RecentEarnings     []WalletTransaction `json:"recent_earnings"`
}

// Review is a consumer's product review.
type Review struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	ConsumerID uuid.UUID `json:"consumer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubscriptionItem is one product line of a recurring box.
type SubscriptionItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subscription is a recurring delivery box.
type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	Frequency        string             `json:"frequency"`
	TotalPrice       decimal.Decimal    `json:"total_price"`
	NextDeliveryDate time.Time          `json:"next_delivery_date"`
	IsActive         bool               `json:"is_active"`
	IsPaused         bool               `json:"is_paused"`
	DeliveryAddress  string             `json:"delivery_address"`
	Items            []SubscriptionItem `json:"items,omitempty"`
}

// BulkOrder is a wholesale quote request.
type BulkOrder struct {
	ID          uuid.UUID        `json:"id"`
	ConsumerID  uuid.UUID        `json:"consumer_id"`
	ProductID   uuid.UUID        `json:"product_id"`
	FarmerID    uuid.UUID        `json:"farmer_id"`
	Quantity    int              `json:"quantity"`
	TargetPrice decimal.Decimal  `json:"target_price"`
	QuotedPrice *decimal.Decimal `json:"quoted_price,omitempty"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Dashboard is the admin analytics snapshot.
type Dashboard struct {
	TotalConsumers   int64           `json:"total_consumers"`
	TotalFarmers     int64           `json:"total_farmers"`
	TotalProducts    int64           `json:"total_products"`
	TotalOrders      int64           `json:"total_orders"`
	DeliveredOrders  int64           `json:"delivered_orders"`
	PendingOrders    int64           `json:"pending_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PlatformEarnings decimal.Decimal `json:"platform_earnings"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:           p.ID,
		FarmerID:     p.FarmerID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Unit:         p.Unit,
		Price:        p.Price,
		Stock:        p.Stock,
		IsActive:     p.IsActive,
		IsOrganic:    p.IsOrganic,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		CreatedAt:    p.CreatedAt,
	}
}

func CartViewToJSON(v service.CartView) Cart {
	items := make([]CartItem, 0, len(v.Lines))
	for _, line := range v.Lines {
		items = append(items, CartItem{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			PriceAtTime: line.PriceAtTime,
			Subtotal:    line.Subtotal(),
		})
	}
	return Cart{
		ID:         v.Cart.ID,
		Items:      items,
		TotalItems: v.TotalItems,
		TotalPrice: v.TotalPrice,
	}
}

func CartItemEntityToJSON(it entities.CartItem) CartItem {
	return CartItem{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Quantity:    it.Quantity,
		PriceAtTime: it.PriceAtTime,
		Subtotal:    it.PriceAtTime.Mul(decimal.NewFromInt(int64(it.Quantity))),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		ConsumerID:      o.ConsumerID,
		FarmerID:        o.FarmerID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		Items:           items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func WalletEntityToJSON(w entities.Wallet) Wallet {
	return Wallet{
		ID:             w.ID,
		FarmerID:       w.FarmerID,
		Balance:        w.Balance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
	}
}

func WalletTransactionEntityToJSON(t entities.WalletTransaction) WalletTransaction {
	return WalletTransaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Amount:      t.Amount,
		Description: t.Description,
		OrderID:     t.OrderID,
		CreatedAt:   t.CreatedAt,
	}
}

func EarningsSummaryToJSON(s entities.EarningsSummary) EarningsSummary {
	recent := make([]WalletTransaction, 0, len(s.RecentEarnings))
	for _, t := range s.RecentEarnings {
		recent = append(recent, WalletTransactionEntityToJSON(t))
	}
	return EarningsSummary{
		Balance:            s.Balance,
		TotalEarned:        s.TotalEarned,
		TotalWithdrawn:     s.TotalWithdrawn,
		PendingWithdrawals: s.PendingWithdrawals,
		RecentEarnings:     recent,
	}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:         r.ID,
		ProductID:  r.ProductID,
		ConsumerID: r.ConsumerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func SubscriptionEntityToJSON(s entities.Subscription) Subscription {
	items := make([]SubscriptionItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SubscriptionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return Subscription{
		ID:               s.ID,
		Frequency:        string(s.Frequency),
		TotalPrice:       s.TotalPrice,
		NextDeliveryDate: s.NextDeliveryDate,
		IsActive:         s.IsActive,
		IsPaused:         s.IsPaused,
		DeliveryAddress:  s.DeliveryAddress,
		Items:            items,
	}
}

func BulkOrderEntityToJSON(b entities.BulkOrder) BulkOrder {
	return BulkOrder{
		ID:          b.ID,
		ConsumerID:  b.ConsumerID,
		ProductID:   b.ProductID,
		FarmerID:    b.FarmerID,
		Quantity:    b.Quantity,
		TargetPrice: b.TargetPrice,
		QuotedPrice: b.QuotedPrice,
		Status:      string(b.Status),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
}

func DashboardToJSON(s service.DashboardStats) Dashboard {
	return Dashboard{
		TotalConsumers:   s.TotalConsumers,
		TotalFarmers:     s.TotalFarmers,
		TotalProducts:    s.TotalProducts,
		TotalOrders:      s.TotalOrders,
		DeliveredOrders:  s.DeliveredOrders,
		PendingOrders:    s.PendingOrders,
		TotalRevenue:     s.TotalRevenue,
		PlatformEarnings: s.PlatformEarnings,
	}
}
