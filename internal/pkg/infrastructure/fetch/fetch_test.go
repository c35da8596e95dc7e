package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestGet(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, recordJSON)

	body, err := Get(context.Background(), ms.URL()+"/record.json")
	is.NoErr(err)
	is.Equal(string(body), recordJSON)
}

func TestGetFailsOnUnexpectedStatus(t *testing.T) {
	is, ms := testSetup(t, http.StatusNotFound, "")

	_, err := Get(context.Background(), ms.URL()+"/missing.json")
	is.True(errors.Is(err, ErrUnexpectedStatus)) // a non 200 response should be reported
}

func TestLoadFromURL(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, recordJSON)

	body, err := Load(context.Background(), ms.URL(), nil)
	is.NoErr(err)
	is.Equal(string(body), recordJSON)
}

func TestLoadFromStdin(t *testing.T) {
	is := is.New(t)

	body, err := Load(context.Background(), "-", bytes.NewBufferString(recordJSON))
	is.NoErr(err)
	is.Equal(string(body), recordJSON)
}

func TestLoadFromFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "record.json")
	is.NoErr(os.WriteFile(path, []byte(recordJSON), 0644))

	body, err := Load(context.Background(), path, nil)
	is.NoErr(err)
	is.Equal(string(body), recordJSON)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	is.True(err != nil) // a missing file should be reported
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		testutils.Expects(is, expects.AnyInput()),
		testutils.Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const recordJSON string = `{"oai_dc:dc":{"dc:title":"A record"}}`
