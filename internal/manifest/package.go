package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Package is a package.json document. Members keep their original order
// and raw values, so rewriting one script leaves every other byte of meaning
// untouched.
type Package struct {
	members object
}

// ParsePackage validates data against the schema and decodes it.
func ParsePackage(data []byte) (*Package, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decoding package manifest: %w", err)
	}
	return &Package{members: obj}, nil
}

// Script returns the command of a scripts entry.
func (p *Package) Script(name string) (string, bool) {
	scripts, err := p.scripts()
	if err != nil {
		return "", false
	}
	raw, ok := scripts.get(name)
	if !ok {
		return "", false
	}
	var cmd string
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return "", false
	}
	return cmd, true
}

// SetScript sets a scripts entry, keeping its position when it exists.
func (p *Package) SetScript(name, command string) error {
	scripts, err := p.scripts()
	if err != nil {
		return err
	}
	raw, err := marshal(command)
	if err != nil {
		return err
	}
	scripts.set(name, raw)

	rawScripts, err := marshal(scripts)
	if err != nil {
		return err
	}
	p.members.set("scripts", rawScripts)
	return nil
}

// AppendToScript appends " && suffix" to an existing script.
func (p *Package) AppendToScript(name, suffix string) error {
	cmd, ok := p.Script(name)
	if !ok {
		return fmt.Errorf("%w: no %q script", ErrInvalid, name)
	}
	return p.SetScript(name, cmd+" && "+suffix)
}

// Bytes encodes the document as 2-space indented JSON with a trailing newline.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.members); err != nil {
		return nil, fmt.Errorf("encoding package manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Package) scripts() (object, error) {
	raw, ok := p.members.get("scripts")
	if !ok {
		return nil, fmt.Errorf("%w: no scripts", ErrInvalid)
	}
	var scripts object
	if err := json.Unmarshal(raw, &scripts); err != nil {
		return nil, fmt.Errorf("decoding scripts: %w", err)
	}
	return scripts, nil
}

// marshal encodes v without HTML escaping so "&&" stays readable.
func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

type member struct {
	Key   string
	Value json.RawMessage
}

// object is a JSON object that remembers member order.
type object []member

func (o object) get(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (o *object) set(key string, value json.RawMessage) {
	for i, m := range *o {
		if m.Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, member{Key: key, Value: value})
}

func (o *object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	var members object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		members = append(members, member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = members
	return nil
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
