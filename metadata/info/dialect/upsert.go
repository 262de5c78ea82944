package dialect

//UpsertFeatures represents dialect supported upsert form
type UpsertFeatures int

const (
	UpsertTypeUnsupported = UpsertFeatures(iota)
	UpsertTypeOnConflict  //i.e PostgreSQL, SQLite
	UpsertTypeMerge       //i.e SQL Server
)

func (u UpsertFeatures) String() string {
	switch u {
	case UpsertTypeOnConflict:
		return "onConflict"
	case UpsertTypeMerge:
		return "merge"
	}
	return "unsupported"
}
