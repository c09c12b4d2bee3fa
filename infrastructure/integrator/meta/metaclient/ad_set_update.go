package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
)

// UpdateAdSet aplica uma mutação em um conjunto de anúncios (orçamento ou
// status). Segue a política de retry exponencial do caminho de mutação;
// erros permanentes retornam imediatamente. Retorna o payload de resposta do
// Meta para anexar ao registro de auditoria.
func (c *MetaClient) UpdateAdSet(ctx context.Context, adsetID string, form url.Values) (json.RawMessage, error) {
	body, err := c.Post(ctx, adsetID, form)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": adsetID,
		"fields":   formKeys(form),
	}).Info("Mutação aplicada no conjunto de anúncios")

	return json.RawMessage(body), nil
}

func formKeys(form url.Values) []string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	return keys
}
