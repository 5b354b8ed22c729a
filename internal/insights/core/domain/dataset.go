package domain

// Dataset is the full, immutable collection of records. It is built once by
// a DatasetSource and shared read-only by every request.
type Dataset struct {
	source  string
	records []Record
}

func NewDataset(source string, records []Record) *Dataset {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Dataset{source: source, records: rs}
}

func (d *Dataset) Source() string { return d.source }

func (d *Dataset) Len() int { return len(d.records) }

// All returns a view over every record in load order.
func (d *Dataset) All() View {
	idx := make([]int, len(d.records))
	for i := range idx {
		idx[i] = i
	}
	return View{ds: d, idx: idx}
}

// View is an ordered subsequence of a Dataset, held as indices into it.
// The zero View is empty.
type View struct {
	ds  *Dataset
	idx []int
}

func (v View) Len() int { return len(v.idx) }

// At returns the i-th record of the view.
func (v View) At(i int) Record { return v.ds.records[v.idx[i]] }

// Records copies the view out as a slice.
func (v View) Records() []Record {
	out := make([]Record, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.ds.records[j]
	}
	return out
}

// Where keeps the records for which keep returns true, preserving order.
func (v View) Where(keep func(Record) bool) View {
	idx := make([]int, 0, len(v.idx))
	for _, j := range v.idx {
		if keep(v.ds.records[j]) {
			idx = append(idx, j)
		}
	}
	return View{ds: v.ds, idx: idx}
}

// Page returns at most limit records starting at offset.
func (v View) Page(offset, limit int) View {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(v.idx) {
		return View{ds: v.ds}
	}
	end := len(v.idx)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return View{ds: v.ds, idx: v.idx[offset:end]}
}
