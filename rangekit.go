package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"rangekit/ranges/discrete"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	_ "github.com/go-sql-driver/mysql"
)

type IntOrdering struct{}

func (IntOrdering) Compare(a, b interface{}) int {
	aInt, ok := a.(int)
	if !ok {
		return 0
	}

	bInt, ok := b.(int)
	if !ok {
		return 0
	}

	if aInt < bInt {
		return -1
	} else if aInt > bInt {
		return 1
	} else {
		return 0
	}
}

type IntEnum struct{}

func (IntEnum) Succ(a interface{}) interface{} {
	aInt, ok := a.(int)
	if !ok {
		return nil
	}

	return aInt + 1
}

func (IntEnum) Pred(a interface{}) interface{} {
	aInt, ok := a.(int)
	if !ok {
		return nil
	}

	return aInt - 1
}

func (IntEnum) Adjacent(a, b interface{}) bool {
	aInt, ok := a.(int)
	if !ok {
		return false
	}

	bInt, ok := b.(int)
	if !ok {
		return false
	}

	return bInt == aInt+1
}

type SumResult struct {
	isCached bool
	sum      int
	key      string
}

func (sr *SumResult) IsCached() bool {
	return sr.isCached
}

func (sr *SumResult) CacheMe() error {
	sr.isCached = true
	newUUID, _ := uuid.NewUUID()
	sr.key = newUUID.String()
	err := Cache.Set(CTX, sr.key, sr.sum, 0).Err()
	if err != nil {
		return err
	}

	return nil
}

func (sr *SumResult) Get() (int, error) {
	var value int
	if sr.IsCached() {
		val, err := Cache.Get(CTX, sr.key).Result()
		if err != nil {
			panic(err)
		}

		value, _ = strconv.Atoi(val)
	} else {
		value = sr.sum
	}

	return value, nil
}

type IntResolver struct {
	database  *sql.DB
	statement *sql.Stmt
}

func (ir *IntResolver) Init() {
	var err error
	ir.database, err = sql.Open("mysql", "gaux:dontenter@/rangekit")
	if err != nil {
		panic(err.Error())
	}

	err = ir.database.Ping()
	if err != nil {
		panic(err.Error())
	}

	ir.statement, err = ir.database.Prepare("SELECT Value FROM Basic WHERE ID = ?")
	if err != nil {
		panic(err.Error())
	}

	return
}

func (ir *IntResolver) Close() {
	ir.database.Close()
	ir.statement.Close()
}

// resolves a range element to its stored value
func (ir *IntResolver) Resolve(id int) int {
	var value int
	err := ir.statement.QueryRow(id).Scan(&value)
	if err != nil {
		panic(err.Error())
	}

	return value
}

var Cache *redis.Client
var CTX context.Context
var Ord discrete.Ordering
var En discrete.Enum
var resolver *IntResolver
var sumResults map[string]*SumResult

func main() {
	CTX = context.Background()
	Cache = redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	Ord = IntOrdering{}
	En = IntEnum{}
	sumResults = make(map[string]*SumResult)

	resolver = &IntResolver{}
	resolver.Init()

	ginEngine := gin.Default()
	ginEngine.GET("/sequence", Sequence)
	ginEngine.GET("/difference", Difference)
	ginEngine.GET("/sum", Sum)
	ginRunErr := ginEngine.Run("localhost" + ":" + "7890")

	if ginRunErr != nil {
		panic(ginRunErr)
	}

	resolver.Close()
}

func Sequence(ginC *gin.Context) {
	urlParam := ginC.Request.URL.Query()
	start, _ := strconv.Atoi(urlParam["start"][0])
	end, _ := strconv.Atoi(urlParam["end"][0])

	valueRange := discrete.NewRange(start, end)
	result := make(map[string]interface{})
	result["Range"] = valueRange.String()
	result["Sequence"] = valueRange.ToSequence(Ord, En)

	ginC.JSON(http.StatusOK, result)
}

func Difference(ginC *gin.Context) {
	urlParam := ginC.Request.URL.Query()
	start, _ := strconv.Atoi(urlParam["start"][0])
	end, _ := strconv.Atoi(urlParam["end"][0])
	subStart, _ := strconv.Atoi(urlParam["subStart"][0])
	subEnd, _ := strconv.Atoi(urlParam["subEnd"][0])

	valueRange := discrete.NewRange(start, end)
	subRange := discrete.NewRange(subStart, subEnd)
	left, right := valueRange.Diff(Ord, En, subRange)

	result := make(map[string]interface{})
	result["Left"] = left.String()
	result["Right"] = right.String()

	ginC.JSON(http.StatusOK, result)
}

func Sum(ginC *gin.Context) {
	urlParam := ginC.Request.URL.Query()
	start, _ := strconv.Atoi(urlParam["start"][0])
	end, _ := strconv.Atoi(urlParam["end"][0])

	var cacheHit, cacheMiss int
	resultKey := fmt.Sprintf("%d:%d", start, end)
	sumResult, ok := sumResults[resultKey]
	if ok && sumResult.IsCached() {
		cacheHit = 1
	} else {
		cacheMiss = 1
		valueRange := discrete.NewRange(start, end)
		total := valueRange.FoldLeft(Ord, En, 0, func(acc, a interface{}) interface{} {
			return acc.(int) + resolver.Resolve(a.(int))
		})

		sumResult = &SumResult{sum: total.(int)}
		sumResult.CacheMe()
		sumResults[resultKey] = sumResult
	}

	data, _ := sumResult.Get()
	result := make(map[string]interface{})
	result["Cache Hits"] = cacheHit
	result["Cache Miss"] = cacheMiss
	result["Result"] = data

	ginC.JSON(http.StatusOK, result)
}
