package decoder

// Field 是一个命名的解码值
type Field struct {
	Name  string
	Value Value
}

// Fields 按布局声明顺序保存解码结果
type Fields []Field

func (f Fields) Get(name string) (Value, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

// Text 返回字段的文本值，字段不存在或缺失时返回空串
func (f Fields) Text(name string) string {
	v, _ := f.Get(name)
	return v.Text()
}

func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// Map 转为 name → 文本值，缺失字段不输出
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		if field.Value.IsAbsent() {
			continue
		}
		m[field.Name] = field.Value.Text()
	}
	return m
}
