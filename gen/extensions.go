package gen

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ExtensionTier selects which tier of the generated class hierarchy an
// extension method lands in.
type ExtensionTier string

const (
	// TierShared places the method on the XRef view class.
	TierShared ExtensionTier = "shared"
	// TierOwning places the method on the owning X class.
	TierOwning ExtensionTier = "owning"
)

// ExtensionMethod is one hand-written convenience method attached to a
// generated class. The JavaScript and TypeScript bodies are emitted
// verbatim into the matching output mode.
type ExtensionMethod struct {
	Tier       ExtensionTier `toml:"tier"`
	JavaScript string        `toml:"javascript"`
	TypeScript string        `toml:"typescript"`
}

// ExtensionTable maps a class name to its extension methods. Classes not
// present in the table get no extra methods; adding convenience methods to
// another class is a new table entry, not a new code path.
type ExtensionTable map[string][]ExtensionMethod

// ForTier returns the extension methods of a class for one tier, in
// declaration order.
func (t ExtensionTable) ForTier(class string, tier ExtensionTier) []ExtensionMethod {
	var methods []ExtensionMethod
	for _, m := range t[class] {
		if m.Tier == tier {
			methods = append(methods, m)
		}
	}
	return methods
}

// extensionFile is the on-disk TOML representation of extension entries.
type extensionFile struct {
	Extension []struct {
		Class string `toml:"class"`
		ExtensionMethod
	} `toml:"extension"`
}

// LoadExtensions reads extension entries from a TOML file and merges them
// over the built-in defaults. A class listed in the file replaces that
// class's default entry entirely.
func LoadExtensions(path string) (ExtensionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading extensions: %w", err)
	}

	var file extensionFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing extensions %s: %w", path, err)
	}

	table := DefaultExtensions()
	replaced := map[string]bool{}
	for _, e := range file.Extension {
		if e.Class == "" {
			return nil, fmt.Errorf("parsing extensions %s: extension entry missing class", path)
		}
		if e.Tier != TierShared && e.Tier != TierOwning {
			return nil, fmt.Errorf("parsing extensions %s: class %s: unknown tier %q", path, e.Class, e.Tier)
		}
		if !replaced[e.Class] {
			delete(table, e.Class)
			replaced[e.Class] = true
		}
		table[e.Class] = append(table[e.Class], e.ExtensionMethod)
	}
	return table, nil
}

// DefaultExtensions returns the built-in extension entries: the lock-holder
// convenience methods on SharedTimer and the byte-parse factories on Run.
func DefaultExtensions() ExtensionTable {
	return ExtensionTable{
		"SharedTimer": {
			{
				Tier: TierShared,
				TypeScript: `    readWith(action: (timer: TimerRef) => void) {
        this.read().with(function (lock) {
            action(lock.timer());
        });
    }
    writeWith(action: (timer: TimerRefMut) => void) {
        this.write().with(function (lock) {
            action(lock.timer());
        });
    }`,
				JavaScript: `    /**
     * @param {function(TimerRef)} action
     */
    readWith(action) {
        this.read().with(function (lock) {
            action(lock.timer());
        });
    }
    /**
     * @param {function(TimerRefMut)} action
     */
    writeWith(action) {
        this.write().with(function (lock) {
            action(lock.timer());
        });
    }`,
			},
		},
		"Run": {
			{
				Tier: TierOwning,
				TypeScript: `    static parseArray(data: Int8Array): Run {
        var buf = Buffer.from(data.buffer);
        if (data.byteLength !== data.buffer.byteLength) {
            buf = buf.slice(data.byteOffset, data.byteOffset + data.byteLength);
        }
        return Run.parse(buf, buf.byteLength);
    }
    static parseFile(file: any) {
        var data = fs.readFileSync(file);
        return Run.parse(data, data.byteLength);
    }
    static parseString(text: string): Run {
        let data = new Buffer(text);
        return Run.parse(data, data.byteLength);
    }`,
				JavaScript: `    /**
     * @param {Int8Array} data
     * @return {Run}
     */
    static parseArray(data) {
        var buf = Buffer.from(data.buffer);
        if (data.byteLength !== data.buffer.byteLength) {
            buf = buf.slice(data.byteOffset, data.byteOffset + data.byteLength);
        }
        return Run.parse(buf, buf.byteLength);
    }
    /**
     * @param {string | Buffer | number} file
     * @return {Run}
     */
    static parseFile(file) {
        var data = fs.readFileSync(file);
        return Run.parse(data, data.byteLength);
    }
    /**
     * @param {string} text
     * @return {Run}
     */
    static parseString(text) {
        var data = new Buffer(text);
        return Run.parse(data, data.byteLength);
    }`,
			},
		},
	}
}
