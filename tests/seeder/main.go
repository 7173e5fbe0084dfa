// seeder walks a full marketplace flow against a running instance:
// registers a farmer and a consumer, lists a few products, fills the
// cart, checks out and drives one order to delivered.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"
)

const baseURL = "http://localhost:8080"

var produce = []struct {
	Name     string
	Category string
	Unit     string
}{
	{"Heirloom Tomatoes", "vegetables", "kg"},
	{"Free-range Eggs", "dairy", "dozen"},
	{"Raw Honey", "pantry", "jar"},
	{"Red Potatoes", "vegetables", "kg"},
	{"Sourdough Loaf", "bakery", "piece"},
}

func main() {
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	farmerToken := register("farmer+"+suffix+"@example.com", "Green Acres", "farmer")
	consumerToken := register("consumer+"+suffix+"@example.com", "Jamie Doe", "consumer")

	productIDs := make([]string, 0, len(produce))
	for _, p := range produce {
		body := map[string]any{
			"name":       p.Name,
			"category":   p.Category,
			"unit":       p.Unit,
			"price":      fmt.Sprintf("%.2f", 1+rand.Float64()*20),
			"stock":      10 + rand.Intn(90),
			"is_active":  true,
			"is_organic": rand.Intn(2) == 0,
		}
		var created struct {
			ID string `json:"id"`
		}
		do(http.MethodPost, "/products", farmerToken, body, &created)
		productIDs = append(productIDs, created.ID)
		fmt.Println("created product", created.ID, p.Name)
	}

	for _, id := range productIDs[:3] {
		do(http.MethodPost, "/cart/items", consumerToken, map[string]any{
			"product_id": id,
			"quantity":   1 + rand.Intn(3),
		}, nil)
	}

	var orders []struct {
		ID          string `json:"id"`
		OrderNumber string `json:"order_number"`
		TotalAmount string `json:"total_amount"`
	}
	do(http.MethodPost, "/orders", consumerToken, map[string]any{
		"shipping_address": "12 Main St, Springfield",
	}, &orders)

	for _, o := range orders {
		fmt.Println("order", o.OrderNumber, "total", o.TotalAmount)
		for _, status := range []string{"confirmed", "out_for_delivery", "delivered"} {
			do(http.MethodPatch, "/orders/"+o.ID+"/status", farmerToken, map[string]any{
				"status": status,
			}, nil)
		}
	}

	var wallet struct {
		Balance     string `json:"balance"`
		TotalEarned string `json:"total_earned"`
	}
	do(http.MethodGet, "/wallet", farmerToken, nil, &wallet)
	fmt.Println("farmer wallet: balance", wallet.Balance, "earned", wallet.TotalEarned)
}

func register(email, fullName, role string) string {
	var resp struct {
		Token string `json:"token"`
	}
	do(http.MethodPost, "/auth/register", "", map[string]any{
		"email":     email,
		"password":  "seeder-password",
		"full_name": fullName,
		"role":      role,
	}, &resp)
	fmt.Println("registered", role, email)
	return resp.Token
}

func do(method, path, token string, body any, out any) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Fatalf("%s %s -> %s", method, path, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatal(err)
		}
	}
}
