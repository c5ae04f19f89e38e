package response

// DataResponse wraps every successful payload as {"data": ...}.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

func Wrap[T any](v T) DataResponse[T] {
	return DataResponse[T]{Data: v}
}
