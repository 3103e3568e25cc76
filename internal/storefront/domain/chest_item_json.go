package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const chestItemIDKey = "id"

func (c ChestItem) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(c.Attributes)+1)
	for k, v := range c.Attributes {
		raw[k] = v
	}
	raw[chestItemIDKey] = c.ID

	return json.Marshal(raw)
}

func (c *ChestItem) UnmarshalJSON(data []byte) error {
	// numbers stay json.Number so ids keep their exact digits
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	raw := map[string]any{}
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	switch id := raw[chestItemIDKey].(type) {
	case string:
		c.ID = id
	case json.Number:
		c.ID = id.String()
	case nil:
		c.ID = ""
	default:
		return fmt.Errorf("unexpected chest item id type %T", id)
	}

	delete(raw, chestItemIDKey)
	c.Attributes = raw

	return nil
}
