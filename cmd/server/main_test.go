package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-web/internal/config"
)

func TestServe_DrainsInFlightRequests(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte("done"))
	})}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- serve(ctx, srv, lis) }()

	reqDone := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://" + lis.Addr().String() + "/")
		if err == nil {
			resp.Body.Close()
		}
		reqDone <- err
	}()

	<-started
	cancel()

	select {
	case err := <-served:
		t.Fatalf("serve returned while a request was in flight: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	if err := <-reqDone; err != nil {
		t.Fatalf("in-flight request failed: %v", err)
	}
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the request finished")
	}
}

func TestServe_ReportsServeFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	lis.Close()

	if err := serve(context.Background(), &http.Server{}, lis); err == nil {
		t.Fatal("expected error from a closed listener")
	}
}

func TestNewSessionStore_UnknownBackend(t *testing.T) {
	_, _, err := newSessionStore(context.Background(), &config.Config{SessionBackend: "etcd"})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
