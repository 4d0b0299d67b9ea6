package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galaxypad/galaxy/internal/galerrors"
)

func TestSendPostsModulatedBodyAndReturnsReply(t *testing.T) {
	var gotPath, gotQuery, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("apiKey")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("1101000"))
	}))
	defer srv.Close()

	c := New(srv.URL, "secretkey")
	reply, err := c.Send(context.Background(), "010110")
	require.NoError(t, err)
	require.Equal(t, "1101000", reply)
	require.Equal(t, "/aliens/send", gotPath)
	require.Equal(t, "secretkey", gotQuery)
	require.Equal(t, "010110", gotBody)
}

func TestSendNon200IsNET001(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL, "key")
	_, err := c.Send(context.Background(), "00")
	require.Error(t, err)
	rep, ok := galerrors.AsReport(err)
	require.True(t, ok)
	require.Equal(t, galerrors.NET001, rep.Code)
}

func TestSendConnectionFailureIsNET002(t *testing.T) {
	c := New("http://127.0.0.1:1", "key")
	_, err := c.Send(context.Background(), "00")
	require.Error(t, err)
	rep, ok := galerrors.AsReport(err)
	require.True(t, ok)
	require.Equal(t, galerrors.NET002, rep.Code)
}
