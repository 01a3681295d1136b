// Package dragdrop defines the payload carried by a drag gesture and the
// resolution rules every drop target applies to it.
package dragdrop

import (
	"errors"
	"strconv"
)

// Wire keys for the string key/value substrate. The host UI's drag API can
// only carry strings; nothing outside Encode/Decode touches this encoding.
const (
	keyItemID       = "itemId"
	keyFromDate     = "fromDate"
	keyFromPool     = "fromPool"
	keyOriginIndex  = "originIndex"
	keyAllowReorder = "allowReorder"
)

// ErrMissingItemID is returned by Decode when the payload does not
// identify an item. Drop targets treat it as "ignore the drop".
var ErrMissingItemID = errors.New("dragdrop: payload missing item id")

// Payload identifies a dragged item and its origin. FromPool is carried
// explicitly so drop targets never have to special-case the empty
// FromDate sentinel.
type Payload struct {
	ItemID       string
	FromDate     string
	FromPool     bool
	OriginIndex  int
	AllowReorder bool
}

// Encode flattens the payload into the string pairs the drag substrate
// carries.
func (p Payload) Encode() map[string]string {
	return map[string]string{
		keyItemID:       p.ItemID,
		keyFromDate:     p.FromDate,
		keyFromPool:     strconv.FormatBool(p.FromPool),
		keyOriginIndex:  strconv.Itoa(p.OriginIndex),
		keyAllowReorder: strconv.FormatBool(p.AllowReorder),
	}
}

// Decode is the inverse of Encode. Malformed numeric or boolean values
// degrade to their zero values; a missing item id is an error because no
// drop can be resolved without one.
func Decode(values map[string]string) (Payload, error) {
	p := Payload{
		ItemID:   values[keyItemID],
		FromDate: values[keyFromDate],
	}
	if p.ItemID == "" {
		return Payload{}, ErrMissingItemID
	}
	p.FromPool, _ = strconv.ParseBool(values[keyFromPool])
	p.OriginIndex, _ = strconv.Atoi(values[keyOriginIndex])
	p.AllowReorder, _ = strconv.ParseBool(values[keyAllowReorder])
	return p, nil
}
