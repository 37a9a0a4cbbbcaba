package services

import (
	"bytes"
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"MindMirrorGo/config"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// 按顺序尝试，第一个匹配的生效。最后一个是贪婪匹配，
// 输出里有多个对象时会把中间的文本也包进去，导致解析失败而回退。
var jsonExtractors = []*regexp.Regexp{
	regexp.MustCompile("```json\n([\\s\\S]*?)\n```"),
	regexp.MustCompile("```\n([\\s\\S]*?)\n```"),
	regexp.MustCompile(`(\{[\s\S]*\})`),
}

// ExtractJSON 从模型输出中找出 JSON 对象并解析为字段表
func ExtractJSON(raw string) (map[string]json.RawMessage, bool) {
	span := ""
	for _, re := range jsonExtractors {
		if m := re.FindStringSubmatch(raw); m != nil {
			span = m[1]
			break
		}
	}
	if span == "" {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		config.Logger.Debugw("模型输出不是合法JSON", "error", err, "length", len(raw))
		return nil, false
	}
	return obj, obj != nil
}

// Normalize 把模型输出转成完整的结果：能解析且合理的字段取模型的值，其余取 fallback。
// 任何输入都不会报错。
func Normalize[T any](raw string, fallback T) T {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return fallback
	}
	return Merge(obj, fallback)
}

// Merge 按 json 标签逐字段合并。字段缺失、为 null、类型不符或未通过 validate 标签校验时保留 fallback 的值。
func Merge[T any](parsed map[string]json.RawMessage, fallback T) T {
	out := fallback
	v := reflect.ValueOf(&out).Elem()
	if v.Kind() != reflect.Struct {
		return fallback
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}
		raw, ok := parsed[name]
		if !ok || isNull(raw) {
			continue
		}

		ptr := reflect.New(field.Type)
		if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
			continue
		}
		if !plausible(ptr.Elem(), field) {
			continue
		}
		v.Field(i).Set(ptr.Elem())
	}
	return out
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// plausible 空列表视为缺失；结构体元素逐个校验
func plausible(val reflect.Value, field reflect.StructField) bool {
	if val.Kind() == reflect.Slice {
		if val.Len() == 0 {
			return false
		}
		if val.Type().Elem().Kind() == reflect.Struct {
			for i := 0; i < val.Len(); i++ {
				if err := validate.Struct(val.Index(i).Interface()); err != nil {
					return false
				}
			}
		}
	}
	if tag := field.Tag.Get("validate"); tag != "" {
		if err := validate.Var(val.Interface(), tag); err != nil {
			return false
		}
	}
	return true
}
