package revalidate_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerdomain "github.com/procoat-sa/site-backend/internal/partners/domain"
	projectdomain "github.com/procoat-sa/site-backend/internal/projects/domain"
	"github.com/procoat-sa/site-backend/internal/revalidate"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestInvalidate_DropsPageKeys(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(revalidate.PageKey("/admin"), "cached-admin"))
	require.NoError(t, mr.Set(revalidate.PageKey("/projects"), "cached-projects"))
	require.NoError(t, mr.Set(revalidate.PageKey("/about"), "cached-about"))

	inv := revalidate.New(client)
	require.NoError(t, inv.Invalidate(ctx, "/admin", "/projects"))

	assert.False(t, mr.Exists(revalidate.PageKey("/admin")))
	assert.False(t, mr.Exists(revalidate.PageKey("/projects")))
	assert.True(t, mr.Exists(revalidate.PageKey("/about")), "untouched pages keep their cache")
}

func TestInvalidate_PublishesStalePaths(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, revalidate.Channel())
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx) // wait for subscription confirmation
	require.NoError(t, err)

	inv := revalidate.New(client)
	require.NoError(t, inv.Invalidate(ctx, "/projects/p-1"))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "/projects/p-1", msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no revalidate message received")
	}
}

func TestInvalidate_NoPathsIsNoop(t *testing.T) {
	client, _ := setupTestRedis(t)
	inv := revalidate.New(client)
	require.NoError(t, inv.Invalidate(context.Background()))
}

func TestNopInvalidator(t *testing.T) {
	inv := revalidate.NewNop()
	require.NoError(t, inv.Invalidate(context.Background(), "/admin"))
}

type staticProjects []projectdomain.Project

func (s staticProjects) List(context.Context) ([]projectdomain.Project, error) { return s, nil }

type staticPartners []partnerdomain.Partner

func (s staticPartners) List(context.Context) ([]partnerdomain.Partner, error) { return s, nil }

func TestWarmer_PrimesPagePayloads(t *testing.T) {
	client, mr := setupTestRedis(t)

	projects := staticProjects{{ID: "p-1", Title: "Family home", Images: []string{"https://x/1.png"}}}
	partners := staticPartners{{ID: "partner-1", Name: "Dulux", LogoURL: "https://x/logo.png"}}

	w := revalidate.NewWarmer(client, projects, partners)
	w.Warm()

	stored, err := mr.Get(revalidate.PageKey("/projects"))
	require.NoError(t, err)

	var got []projectdomain.Project
	require.NoError(t, json.Unmarshal([]byte(stored), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Family home", got[0].Title)

	stored, err = mr.Get(revalidate.PageKey("/"))
	require.NoError(t, err)

	var gotPartners []partnerdomain.Partner
	require.NoError(t, json.Unmarshal([]byte(stored), &gotPartners))
	require.Len(t, gotPartners, 1)
	assert.Equal(t, "Dulux", gotPartners[0].Name)
}
