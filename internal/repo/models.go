package repo

import (
	"time"

	"github.com/agrilink/market-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Product struct {
	ID           uuid.UUID       `db:"id"`
	FarmerID     uuid.UUID       `db:"farmer_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Category     string          `db:"category"`
	Unit         string          `db:"unit"`
	Price        decimal.Decimal `db:"price"`
	Stock        int             `db:"stock"`
	IsActive     bool            `db:"is_active"`
	IsOrganic    bool            `db:"is_organic"`
	Rating       decimal.Decimal `db:"rating"`
	TotalReviews int             `db:"total_reviews"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type Cart struct {
	ID         uuid.UUID `db:"id"`
	ConsumerID uuid.UUID `db:"consumer_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type CartItem struct {
	ID          uuid.UUID       `db:"id"`
	CartID      uuid.UUID       `db:"cart_id"`
	ProductID   uuid.UUID       `db:"product_id"`
	Quantity    int             `db:"quantity"`
	PriceAtTime decimal.Decimal `db:"price_at_time"`
	AddedAt     time.Time       `db:"added_at"`
}

// CartLine joins a cart item with the current product row.
type CartLine struct {
	CartItem

	ProductName  string          `db:"product_name"`
	FarmerID     uuid.UUID       `db:"farmer_id"`
	CurrentPrice decimal.Decimal `db:"current_price"`
	Stock        int             `db:"stock"`
	IsActive     bool            `db:"is_active"`
}

type Order struct {
	ID              uuid.UUID       `db:"id"`
	OrderNumber     string          `db:"order_number"`
	ConsumerID      uuid.UUID       `db:"consumer_id"`
	FarmerID        uuid.UUID       `db:"farmer_id"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ShippingAddress string          `db:"shipping_address"`
	OrderDate       time.Time       `db:"order_date"`
	DeliveryDate    time.Time       `db:"delivery_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type OrderItem struct {
	ID        uuid.UUID       `db:"id"`
	OrderID   uuid.UUID       `db:"order_id"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}

type Wallet struct {
	ID             uuid.UUID       `db:"id"`
	FarmerID       uuid.UUID       `db:"farmer_id"`
	Balance        decimal.Decimal `db:"balance"`
	TotalEarned    decimal.Decimal `db:"total_earned"`
	TotalWithdrawn decimal.Decimal `db:"total_withdrawn"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type WalletTransaction struct {
	ID          uuid.UUID       `db:"id"`
	WalletID    uuid.UUID       `db:"wallet_id"`
	Type        string          `db:"type"`
	Status      string          `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	OrderID     uuid.NullUUID   `db:"order_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Review struct {
	ID         uuid.UUID `db:"id"`
	ProductID  uuid.UUID `db:"product_id"`
	ConsumerID uuid.UUID `db:"consumer_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

type Subscription struct {
	ID               uuid.UUID       `db:"id"`
	ConsumerID       uuid.UUID       `db:"consumer_id"`
	Frequency        string          `db:"frequency"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	NextDeliveryDate time.Time       `db:"next_delivery_date"`
	IsActive         bool            `db:"is_active"`
	IsPaused         bool            `db:"is_paused"`
	DeliveryAddress  string          `db:"delivery_address"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type SubscriptionItem struct {
	ID             uuid.UUID       `db:"id"`
	SubscriptionID uuid.UUID       `db:"subscription_id"`
	ProductID      uuid.UUID       `db:"product_id"`
	Quantity       int             `db:"quantity"`
	Price          decimal.Decimal `db:"price"`
}

type BulkOrder struct {
	ID          uuid.UUID           `db:"id"`
	ConsumerID  uuid.UUID           `db:"consumer_id"`
	ProductID   uuid.UUID           `db:"product_id"`
	FarmerID    uuid.UUID           `db:"farmer_id"`
	Quantity    int                 `db:"quantity"`
	TargetPrice decimal.Decimal     `db:"target_price"`
	QuotedPrice decimal.NullDecimal `db:"quoted_price"`
	Status      string              `db:"status"`
	Notes       string              `db:"notes"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         entities.Role(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
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
		UpdatedAt:    p.UpdatedAt,
	}
}

func CartToEntity(c Cart) entities.Cart {
	return entities.Cart{
		ID:         c.ID,
		ConsumerID: c.ConsumerID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:          i.ID,
		CartID:      i.CartID,
		ProductID:   i.ProductID,
		Quantity:    i.Quantity,
		PriceAtTime: i.PriceAtTime,
		AddedAt:     i.AddedAt,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		CartItem:     CartItemToEntity(l.CartItem),
		ProductName:  l.ProductName,
		FarmerID:     l.FarmerID,
		CurrentPrice: l.CurrentPrice,
		Stock:        l.Stock,
		IsActive:     l.IsActive,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		ConsumerID:      o.ConsumerID,
		FarmerID:        o.FarmerID,
		Status:          entities.OrderStatus(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}
	return order
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Subtotal:  i.Subtotal,
	}
}

func WalletToEntity(w Wallet) entities.Wallet {
	return entities.Wallet{
		ID:             w.ID,
		FarmerID:       w.FarmerID,
		Balance:        w.Balance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
		UpdatedAt:      w.UpdatedAt,
	}
}

func WalletTransactionToEntity(t WalletTransaction) entities.WalletTransaction {
	tx := entities.WalletTransaction{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Type:        entities.TransactionType(t.Type),
		Status:      entities.TransactionStatus(t.Status),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if t.OrderID.Valid {
		id := t.OrderID.UUID
		tx.OrderID = &id
	}
	return tx
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:         r.ID,
		ProductID:  r.ProductID,
		ConsumerID: r.ConsumerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func SubscriptionToEntity(s Subscription, items []SubscriptionItem) entities.Subscription {
	sub := entities.Subscription{
		ID:               s.ID,
		ConsumerID:       s.ConsumerID,
		Frequency:        entities.SubscriptionFrequency(s.Frequency),
		TotalPrice:       s.TotalPrice,
		NextDeliveryDate: s.NextDeliveryDate,
		IsActive:         s.IsActive,
		IsPaused:         s.IsPaused,
		DeliveryAddress:  s.DeliveryAddress,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if len(items) > 0 {
		sub.Items = make([]entities.SubscriptionItem, 0, len(items))
		for _, it := range items {
			sub.Items = append(sub.Items, entities.SubscriptionItem{
				ID:             it.ID,
				SubscriptionID: it.SubscriptionID,
				ProductID:      it.ProductID,
				Quantity:       it.Quantity,
				Price:          it.Price,
			})
		}
	}
	return sub
}

func BulkOrderToEntity(b BulkOrder) entities.BulkOrder {
	bo := entities.BulkOrder{
		ID:          b.ID,
		ConsumerID:  b.ConsumerID,
		ProductID:   b.ProductID,
		FarmerID:    b.FarmerID,
		Quantity:    b.Quantity,
		TargetPrice: b.TargetPrice,
		Status:      entities.BulkOrderStatus(b.Status),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.QuotedPrice.Valid {
		price := b.QuotedPrice.Decimal
		bo.QuotedPrice = &price
	}
	return bo
}
