package bill

// AccountingClassesClient provides access to the
// /v3/classifications/accounting-classes resource.
type AccountingClassesClient = ResourceClient[AccountingClass, AccountingClassCreateRequest, AccountingClassUpdateRequest]

// AccountingClass represents one accounting class used to classify
// transactions.
type AccountingClass struct {
	ID          string `json:"id"                    yaml:"id"`
	Archived    bool   `json:"archived"              yaml:"archived"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	ShortName   string `json:"shortName,omitempty"   yaml:"shortName,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
	CreatedTime string `json:"createdTime"           yaml:"createdTime"`
	UpdatedTime string `json:"updatedTime"           yaml:"updatedTime"`
}

// AccountingClassCreateRequest represents a request to create an accounting
// class.
type AccountingClassCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	ShortName   string `json:"shortName,omitempty"   yaml:"shortName,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
}

// AccountingClassUpdateRequest represents a partial update to an accounting
// class. Nil fields are left unchanged.
type AccountingClassUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	ShortName   *string `json:"shortName,omitempty"   yaml:"shortName,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
}

// AccountingClassFilterableFields are the fields accepted in accounting class
// filters.
var AccountingClassFilterableFields = []string{
	"id", "archived", "name", "shortName", "parentId", "createdTime", "updatedTime",
}

// AccountingClassSortableFields are the fields accepted in accounting class
// sorts.
var AccountingClassSortableFields = []string{"name", "createdTime", "updatedTime"}
