package field

// Grades 是等级评分所接受的七个字母，按从高到低的顺序排列
var Grades = []string{"S", "A", "B", "C", "D", "E", "F"}

// DefaultGradeWeights 是唯一的缺省等级换算表。
// 种子数据和统计引擎的兜底换算都使用这一张表，
// 避免出现"客户端模板"与"服务端兜底"两套不一致的常量。
var DefaultGradeWeights = map[string]float64{
	"S": 5,
	"A": 4,
	"B": 3,
	"C": 2,
	"D": 1,
	"E": 0,
	"F": 0,
}
