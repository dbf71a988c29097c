package lists_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"model-storage/feature/lists"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	feature := lists.NewFeature(nil, "lists", lists.Config{Usage: "table"}, zap.NewNop())
	assert.Equal(t, "lists", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	require.NoError(t, feature.Load(app))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandler_Mutations(t *testing.T) {
	app := newApp(t)

	status, body := do(t, app, "POST", "/lists/sections/0/items", `[{"title":"a"},{"title":"b"}]`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var added lists.Result
	require.NoError(t, json.Unmarshal(body, &added))
	assert.False(t, added.Reload)
	require.Len(t, added.Entries, 2)
	assert.Contains(t, string(body), `"inserted_items"`)

	status, body = do(t, app, "PUT", "/lists/items/"+added.Entries[0].ID.String(), `{"title":"A"}`)
	assert.Equal(t, fiber.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"updated_items":[{"section":0,"item":0}]`)

	status, _ = do(t, app, "POST", "/lists/items/move", `{"from":{"section":0,"item":0},"to":{"section":0,"item":1}}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, "PUT", "/lists/sections/0/header", `{"header":"Inbox"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"updated_sections":[0]`)

	status, body = do(t, app, "PUT", "/lists/sections/1", `[{"title":"x"}]`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"reload":true`)

	status, body = do(t, app, "GET", "/lists", "")
	require.Equal(t, fiber.StatusOK, status)
	var views []lists.SectionView
	require.NoError(t, json.Unmarshal(body, &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Inbox", views[0].Header)
	assert.Equal(t, "b", views[0].Items[0].Title)
	assert.Equal(t, "A", views[0].Items[1].Title)

	status, _ = do(t, app, "DELETE", "/lists/items", `{"ids":["`+added.Entries[1].ID.String()+`"]}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "DELETE", "/lists/sections", `{"sections":[1]}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, "GET", "/lists/search?q=a", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"title":"A"`)
}

func TestHandler_Batch(t *testing.T) {
	app := newApp(t)

	status, body := do(t, app, "POST", "/lists/batch", `{"ops":[
		{"op":"add","section":0,"entry":{"title":"a"}},
		{"op":"add","section":0,"entry":{"title":"b"}},
		{"op":"header","section":0,"header":"Top"}
	]}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var res lists.Result
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotNil(t, res.Update)
	assert.Equal(t, []int{0}, res.Update.InsertedSections)
	assert.Len(t, res.Update.InsertedItems, 2)
	assert.Empty(t, res.Update.UpdatedSections)
}

func TestHandler_Errors(t *testing.T) {
	app := newApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"Invalid section", "POST", "/lists/sections/x/items", `[{"title":"a"}]`, fiber.StatusBadRequest},
		{"Missing title", "POST", "/lists/sections/0/items", `[{"title":""}]`, fiber.StatusBadRequest},
		{"Malformed body", "POST", "/lists/items/insert", `{`, fiber.StatusBadRequest},
		{"Unknown entry", "POST", "/lists/items/01ARZ3NDEKTSV4RRFFQ69G5FAV/reload", "", fiber.StatusNotFound},
		{"Invalid id", "PUT", "/lists/items/nope", `{"title":"a"}`, fiber.StatusBadRequest},
		{"Unknown op", "POST", "/lists/batch", `{"ops":[{"op":"explode"}]}`, fiber.StatusBadRequest},
		{"Missing section", "DELETE", "/lists/sections", `{"sections":[3]}`, fiber.StatusNotFound},
		{"Snapshot disabled", "POST", "/lists/snapshot", "", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status, string(body))
			assert.Contains(t, string(body), `"error"`)
		})
	}
}
