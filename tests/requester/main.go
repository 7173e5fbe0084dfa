package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/products"

func main() {
	ids := fetchProductIDs()
	fmt.Println("known products:", len(ids))

	for {
		var wg sync.WaitGroup
		burst := rand.Intn(10)
		for i := 0; i < burst; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doRequest(ids)
			}()
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func fetchProductIDs() []string {
	resp, err := http.Get(baseURL)
	if err != nil {
		fmt.Println("failed to list products:", err)
		return nil
	}
	defer resp.Body.Close()

	var products []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		fmt.Println("failed to decode products:", err)
		return nil
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func doRequest(ids []string) {
	url := baseURL
	// mostly repeated single-product reads to exercise the cache,
	// with the occasional miss on a random uuid
	if len(ids) > 0 && rand.Intn(5) != 0 {
		url = baseURL + "/" + ids[rand.Intn(len(ids))]
	} else if rand.Intn(2) == 0 {
		url = baseURL + "/" + randomUUID()
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}

func randomUUID() string {
	hex := []rune("0123456789abcdef")
	out := make([]rune, 0, 36)
	for _, n := range []int{8, 4, 4, 4, 12} {
		if len(out) > 0 {
			out = append(out, '-')
		}
		for i := 0; i < n; i++ {
			out = append(out, hex[rand.Intn(len(hex))])
		}
	}
	return string(out)
}
