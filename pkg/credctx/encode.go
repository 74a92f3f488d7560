package credctx

import "io"

// Encode writes the context to w such that FromBytes can decode it
// losslessly.
//
// Present fields are written in a fixed order: url, path, protocol,
// host, username, password, quit. Absent fields are omitted. Every field
// is validated before anything is written for it; a validation failure
// surfaces as *EncodingError and leaves the remaining fields unwritten.
// Encode does not emit a blank terminator line.
func (c *Context) Encode(w io.Writer) error {
	for _, f := range []struct {
		key   string
		value []byte
	}{
		{"url", c.URL},
		{"path", c.Path},
	} {
		if f.value == nil {
			continue
		}
		if err := writeField(w, f.key, f.value); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		key   string
		value *string
	}{
		{"protocol", c.Protocol},
		{"host", c.Host},
		{"username", c.Username},
		{"password", c.Password},
	} {
		if f.value == nil {
			continue
		}
		if err := writeField(w, f.key, []byte(*f.value)); err != nil {
			return err
		}
	}
	if c.Quit != nil {
		value := "false"
		if *c.Quit {
			value = "true"
		}
		if err := writeField(w, "quit", []byte(value)); err != nil {
			return err
		}
	}
	return nil
}

// writeField validates one field and writes its key=value line with a
// single Write call.
func writeField(w io.Writer, key string, value []byte) error {
	if err := validate(key, value); err != nil {
		return err
	}

	line := make([]byte, 0, len(key)+len(value)+2)
	line = append(line, key...)
	line = append(line, '=')
	line = append(line, value...)
	line = append(line, '\n')

	_, err := w.Write(line)
	return err
}
