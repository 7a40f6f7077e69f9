package main

import (
	"context"
	"errors"
	"testing"
)

func newTestBlobs(t *testing.T) *BadgerBlobStore {
	t.Helper()
	db, err := OpenBadger("")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewBadgerBlobStore(db)
}

func TestBlobStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	blobs := newTestBlobs(t)

	id, err := blobs.Store(ctx, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := blobs.Load(ctx, id)
	if err != nil || string(got) != "payload" {
		t.Fatalf("Load = %q, %v", got, err)
	}
	if err := blobs.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := blobs.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreAndLoadMessage(t *testing.T) {
	ctx := context.Background()
	blobs := newTestBlobs(t)

	if msg, err := loadMessage(ctx, blobs, ""); msg != nil || err != nil {
		t.Fatalf("empty id = %v, %v", msg, err)
	}
	id, err := storeMessage(ctx, blobs, WelcomeMessage{PhotoFileID: "file-1", Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	msg, err := loadMessage(ctx, blobs, id)
	if err != nil {
		t.Fatal(err)
	}
	if msg.PhotoFileID != "file-1" || msg.Text != "hello" {
		t.Fatalf("msg = %+v", msg)
	}
}
