package navarra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Record es un centro sanitario del open data de Navarra, ya reducido a los
// campos que persistimos.
type Record struct {
	Name       string
	Address    string
	ZipCode    string
	Phone      string
	TypeCenter string
}

// El feed publica cada registro como un array de posición fija:
// [id, codigo, nombre, domicilio, localidad, codigo postal, telefono, tipo, dependencia]
const (
	idxName    = 2
	idxAddress = 3
	idxZipCode = 5
	idxPhone   = 6
	idxType    = 7

	recordLen = 9
)

type feedPayload struct {
	Records [][]any `json:"records"`
}

type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch descarga y parsea el feed. El documento llega con un byte espurio
// delante del JSON, que hay que descartar antes de decodificar.
func (c *Client) Fetch(ctx context.Context, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(body) > 0 {
		body = body[1:]
	}

	var payload feedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed feed: %w", err)
	}

	records := make([]Record, 0, len(payload.Records))
	for i, row := range payload.Records {
		if len(row) < recordLen {
			return nil, fmt.Errorf("malformed feed record at index %d", i)
		}

		records = append(records, Record{
			Name:       str(row[idxName]),
			Address:    str(row[idxAddress]),
			ZipCode:    str(row[idxZipCode]),
			Phone:      str(row[idxPhone]),
			TypeCenter: str(row[idxType]),
		})
	}

	return records, nil
}

// str tolera valores no-string (números, null) devolviendo su forma textual.
// Los números del feed llegan como float64; FormatFloat evita la notación
// científica que fmt.Sprint produce con teléfonos y códigos postales.
func str(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
