package dv

import "strconv"

// String renders "<value> <unit>" where <unit> is a canonical
// reconstruction of the dimension vector from base-unit symbols. Layout is
// implementation-defined (spec.md §4.4); round-tripping through New is not
// guaranteed.
func (q Quantity) String() string {
	unit := q.dims.String()
	v := strconv.FormatFloat(q.value, 'g', -1, 64)
	if unit == "" {
		return v
	}
	return v + " " + unit
}
