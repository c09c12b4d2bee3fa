package metaclient

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var versionSegment = regexp.MustCompile(`^v\d+\.\d+$`)

// NormalizeNext converte o cursor "next" da paginação, que pode chegar como
// URL absoluta (https://graph.facebook.com/v22.0/...) ou como caminho
// relativo, em caminho relativo + parâmetros, removendo a credencial
// embutida. Toda re-emissão de cursor passa por aqui; nenhum reader faz esse
// parse por conta própria.
func NormalizeNext(next string) (string, url.Values, error) {
	parsed, err := url.Parse(next)
	if err != nil {
		return "", nil, fmt.Errorf("cursor de paginação inválido: %w", err)
	}

	params := parsed.Query()
	params.Del("access_token")

	path := strings.TrimPrefix(parsed.Path, "/")
	if segments := strings.SplitN(path, "/", 2); len(segments) == 2 && versionSegment.MatchString(segments[0]) {
		path = segments[1]
	}

	if path == "" {
		return "", nil, fmt.Errorf("cursor de paginação sem caminho: %q", next)
	}

	return path, params, nil
}
