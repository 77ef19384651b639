package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/sign-payment/main.go <razorpay-order-id> <razorpay-payment-id>")
		fmt.Println("Example: go run cmd/sign-payment/main.go order_IluGWxBm9U8zJ8 pay_IluGyQYTtC8xPd")
		os.Exit(1)
	}

	orderID := os.Args[1]
	paymentID := os.Args[2]

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	signature := razorpay.Sign(orderID, paymentID, cfg.Razorpay.KeySecret)

	fmt.Printf("razorpay_order_id:   %s\n", orderID)
	fmt.Printf("razorpay_payment_id: %s\n", paymentID)
	fmt.Printf("razorpay_signature:  %s\n", signature)
	fmt.Printf("\nPaste these into a prepaid /checkout body to test without a real payment.\n")
}
