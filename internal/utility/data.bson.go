package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map[string]interface{} qua bson marshal.
// Dùng khi cần tạo update document từ struct mà vẫn tôn trọng các bson tags.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}

	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal thất bại: %w", err)
	}
	if err := bson.Unmarshal(data, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal thất bại: %w", err)
	}
	return stringInterfaceMap, nil
}

// BsonWrapper chứa các toán tử bson cơ bản ($set, $unset, $push)
// dùng để chuyển struct thành update document
type BsonWrapper struct {
	Set   interface{} `json:"$set,omitempty" bson:"$set,omitempty"`
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`
	Push  interface{} `json:"$push,omitempty" bson:"$push,omitempty"`
}

// CustomBson dùng để tạo các update document từ struct
type CustomBson struct{}

// Set tạo truy vấn $set từ struct
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Unset tạo truy vấn $unset từ struct
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// Push tạo truy vấn $push từ struct
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}
