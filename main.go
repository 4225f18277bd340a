package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/lib/mypublisher"
	"github.com/warungberkah/storefront/lib/mypubsub"
	"github.com/warungberkah/storefront/lib/myqueue"
	"github.com/warungberkah/storefront/lib/mystore"
	"github.com/warungberkah/storefront/lib/mytime"
	"github.com/warungberkah/storefront/lib/myuuid"
	"github.com/warungberkah/storefront/services/auth"
	"github.com/warungberkah/storefront/services/cart"
	"github.com/warungberkah/storefront/services/catalog"
	"github.com/warungberkah/storefront/services/checkout"
	"github.com/warungberkah/storefront/services/shopinfo"
	"github.com/warungberkah/storefront/services/wishlist"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	keyValueStore, keyValueCleanup, err := mykeyvalue.New(c)
	if err != nil {
		log.Fatalf("Error creating key-value store: %s", err)
	}
	defer keyValueCleanup()

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	catalogService := catalog.NewService(productStore)
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog endpoints: %s", err)
	}

	cartService := cart.NewService(keyValueStore, catalogService, uuider)
	err = cartService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart endpoints: %s", err)
	}

	wishlistService := wishlist.NewService(keyValueStore, catalogService, uuider)
	err = wishlistService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering wishlist endpoints: %s", err)
	}

	checkoutService := checkout.NewService(cartService, publisher, pubsub, uuider)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	accountStore, accountStoreCleanup, err := mystore.New[auth.Account](c)
	if err != nil {
		log.Fatalf("Error creating account store: %s", err)
	}
	defer accountStoreCleanup()

	sessionStore, sessionStoreCleanup, err := mystore.New[auth.Session](c)
	if err != nil {
		log.Fatalf("Error creating session store: %s", err)
	}
	defer sessionStoreCleanup()

	authService := auth.NewService(accountStore, sessionStore, nower, uuider)
	err = authService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering auth endpoints: %s", err)
	}

	shopinfoService := shopinfo.NewService()
	err = shopinfoService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering shopinfo endpoints: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/products)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
