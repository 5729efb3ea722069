package repository

import (
	"encoding/json"
	"fmt"

	"gestao_atendimentos/internal/domain/entities"
)

// datasetBuckets are the rows written by the SQL stores, one per collection.
var datasetBuckets = []string{"engagements", "consultants", "stages", "proposals"}

// splitBuckets encodes ds canonically and cuts the document into one payload
// per collection.
func splitBuckets(ds entities.Dataset) (map[string][]byte, error) {
	doc, err := entities.EncodeDataset(ds)
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("split dataset: %w", err)
	}
	out := make(map[string][]byte, len(datasetBuckets))
	for _, b := range datasetBuckets {
		out[b] = raw[b]
	}
	return out, nil
}

// joinBuckets reassembles bucket payloads into a document and decodes it, so
// that the SQL stores share the corrupt-document rules of the file store.
func joinBuckets(rows map[string][]byte) (entities.Dataset, error) {
	if len(rows) == 0 {
		return entities.DefaultDataset(), nil
	}
	raw := make(map[string]json.RawMessage, len(rows))
	for bucket, payload := range rows {
		raw[bucket] = json.RawMessage(payload)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("%w: %v", entities.ErrCorruptDataset, err)
	}
	return entities.DecodeDataset(doc)
}
