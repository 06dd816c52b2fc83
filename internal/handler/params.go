package handler

import (
	"encoding/json"
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// Ids leave the server as strings; snowflake ids do not fit a JS number.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// rawField takes a form value as typed. JSON clients may send it as a string
// or a bare number.
type rawField string

func (f *rawField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = rawField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = rawField(n.String())
	return nil
}
