package dataset

// Defaults mirror the classic Groceries purchase log this package was
// built around. Override per-file via the WithX options.
const (
	// DefaultMemberColumn is the header name of the member id column.
	DefaultMemberColumn = "Member_number"
	// DefaultDateColumn is the header name of the purchase date column.
	DefaultDateColumn = "Date"
	// DefaultItemColumn is the header name of the item description column.
	DefaultItemColumn = "itemDescription"
	// DefaultDateLayout parses dd-mm-yyyy purchase dates.
	DefaultDateLayout = "02-01-2006"
	// DefaultDelimiter is the CSV field separator.
	DefaultDelimiter = ','
)

// Option mutates load options. Constructors never panic; empty or zero
// arguments are ignored so defaults stay intact.
type Option func(*loadOptions)

// loadOptions is the resolved configuration used by LoadCSV.
type loadOptions struct {
	memberColumn string
	dateColumn   string
	itemColumn   string
	dateLayout   string
	delimiter    rune
}

// WithMemberColumn overrides the member id header name.
func WithMemberColumn(name string) Option {
	return func(o *loadOptions) {
		if name != "" {
			o.memberColumn = name
		}
	}
}

// WithDateColumn overrides the purchase date header name.
func WithDateColumn(name string) Option {
	return func(o *loadOptions) {
		if name != "" {
			o.dateColumn = name
		}
	}
}

// WithItemColumn overrides the item description header name.
func WithItemColumn(name string) Option {
	return func(o *loadOptions) {
		if name != "" {
			o.itemColumn = name
		}
	}
}

// WithDateLayout overrides the time.Parse layout for the date column.
func WithDateLayout(layout string) Option {
	return func(o *loadOptions) {
		if layout != "" {
			o.dateLayout = layout
		}
	}
}

// WithDelimiter overrides the CSV field separator (e.g. ';' or '\t').
func WithDelimiter(d rune) Option {
	return func(o *loadOptions) {
		if d != 0 {
			o.delimiter = d
		}
	}
}

// gatherOptions resolves option setters against documented defaults;
// last-writer-wins.
func gatherOptions(opts ...Option) loadOptions {
	o := loadOptions{
		memberColumn: DefaultMemberColumn,
		dateColumn:   DefaultDateColumn,
		itemColumn:   DefaultItemColumn,
		dateLayout:   DefaultDateLayout,
		delimiter:    DefaultDelimiter,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
