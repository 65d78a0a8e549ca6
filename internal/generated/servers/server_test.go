package servers_test

import (
	"regexp"
	"sort"
	"testing"

	"orderdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`\{([^}]+)\}`)

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	var documented []string
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+pathParam.ReplaceAllString(path, ":$1"))
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, nil)

	var registered []string
	for _, route := range e.Routes() {
		registered = append(registered, route.Method+" "+route.Path)
	}

	sort.Strings(documented)
	sort.Strings(registered)
	assert.Equal(t, documented, registered)
}
