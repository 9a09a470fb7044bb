//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Manual smoke test for the contribution worker: publishes a price-updated
// event and watches the consumer group drain it.
//
//	go run scripts/test_publish.go -redis localhost:6379 -user <uuid>

type PriceUpdatedEvent struct {
	StationID uuid.UUID `json:"station_id"`
	FuelType  string    `json:"fuel_type"`
	Value     float64   `json:"value"`
	UpdatedBy uuid.UUID `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

const stream = "stream:price:updated"

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	userID := flag.String("user", "", "reporting user UUID (random if empty)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	updatedBy := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("Invalid user UUID: %v", err)
		}
		updatedBy = parsed
	}

	event := PriceUpdatedEvent{
		StationID: uuid.New(),
		FuelType:  "etanol",
		Value:     3.49,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   User ID: %s\n", event.UpdatedBy)
	fmt.Printf("   Fuel: %s at %.2f\n", event.FuelType, event.Value)

	fmt.Printf("\nWaiting for the consumer group to ack the message...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: message still pending, is the worker running?")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Pending == 0 && g.LastDeliveredID >= result {
					fmt.Printf("\nMessage consumed by group %q\n", g.Name)
					return
				}
			}
		}
	}
}
