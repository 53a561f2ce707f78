package encode_test

import (
	"fmt"

	"github.com/katalvlaran/lvcut/config"
	"github.com/katalvlaran/lvcut/encode"
)

// ExampleEncoder_Encode
//
// Scenario:
//
//	User ages and the genres each user rated, one pipe-separated field each.
//
// Use case:
//
//	Building one indicator matrix from a numeric and a multi-label column.
func ExampleEncoder_Encode() {
	cfg := config.Default()
	cfg.Columns = []config.ColumnConfig{
		{Name: "age", Edges: []float64{0, 30, 60}, Labels: []string{"young", "old"}},
	}
	enc, err := encode.New(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := enc.Encode(
		encode.Numbers("age", 22, 45),
		encode.Records("genres", "Comedy|Drama", "Drama"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(res.Table)
	fmt.Println("issues:", len(res.Issues))
	// Output:
	// age_young  age_old  genres_Comedy  genres_Drama
	// 1          0        1              1
	// 0          1        0              1
	// issues: 0
}
