package gen

import (
	"github.com/Eein/livesplit-core/model"
)

// writeClass emits the three-tier hierarchy for one class: the shared view
// XRef, the mutable view XRefMut extending it, and the owning X on top.
// Each tier adds only its own category of methods; construction and
// disposal live on the owning tier.
func (mw *moduleWriter) writeClass(name string, class *model.Class) {
	nameRef := name + "Ref"
	nameRefMut := name + "RefMut"

	if mw.typeScript {
		mw.printf("\nexport class %s {", nameRef)
		mw.print("\n    ptr: Buffer;")
	} else {
		mw.printf("\nclass %s {", nameRef)
	}

	for i := range class.SharedFns {
		mw.writeFn(&class.SharedFns[i])
	}
	mw.writeExtensions(name, TierShared)

	if mw.typeScript {
		mw.print("\n    constructor(ptr: Buffer) {")
	} else {
		mw.print("\n    /**\n     * @param {Buffer} ptr\n     */\n    constructor(ptr) {")
	}
	mw.print("\n        this.ptr = ptr;\n    }\n}\n")

	mw.writeTierOpen(nameRefMut, nameRef)

	for i := range class.MutFns {
		mw.writeFn(&class.MutFns[i])
	}
	mw.print("\n}\n")

	mw.writeTierOpen(name, nameRefMut)

	if mw.typeScript {
		mw.printf("\n    with(closure: (obj: %s) => void) {", name)
	} else {
		mw.printf("\n    /**\n     * @param {function(%s)} closure\n     */\n    with(closure) {", name)
	}

	// Scoped use: dispose runs on every exit path of the closure.
	mw.print("\n        try {" +
		"\n            closure(this);" +
		"\n        } finally {" +
		"\n            this.dispose();" +
		"\n        }" +
		"\n    }" +
		"\n    dispose() {" +
		"\n        if (!ref.isNull(this.ptr)) {")

	// Disposal is idempotent: the null check above makes a second dispose
	// (or a dispose after ownership transfer) a no-op.
	if drop := class.Drop(); drop != nil {
		mw.printf("\n            %s.%s(this.ptr);", mw.native, drop.Name)
	}

	mw.print("\n            this.ptr = ref.NULL;\n        }\n    }")

	for i := range class.StaticFns {
		mw.writeFn(&class.StaticFns[i])
	}
	for i := range class.OwnFns {
		if class.OwnFns[i].Method != model.DropMethod {
			mw.writeFn(&class.OwnFns[i])
		}
	}
	mw.writeExtensions(name, TierOwning)

	if mw.typeScript {
		mw.print("\n}\n")
	} else {
		mw.printf("\n}\nexports.%[1]s = %[1]s;\n", name)
	}
}

// writeTierOpen emits the export of the previous tier (documented mode
// assigns to the exports table; annotated mode uses the export keyword)
// and opens the next class declaration.
func (mw *moduleWriter) writeTierOpen(name, base string) {
	if mw.typeScript {
		mw.printf("\nexport class %s extends %s {", name, base)
	} else {
		mw.printf("exports.%[1]s = %[1]s;\n\nclass %[2]s extends %[1]s {", base, name)
	}
}

// writeExtensions splices the class's extension methods for one tier.
// Bodies are stored without their leading newline (TOML multi-line
// literals trim it), so the writer supplies it.
func (mw *moduleWriter) writeExtensions(class string, tier ExtensionTier) {
	for _, ext := range mw.exts.ForTier(class, tier) {
		body := ext.JavaScript
		if mw.typeScript {
			body = ext.TypeScript
		}
		if body == "" {
			continue
		}
		mw.print("\n")
		mw.print(body)
	}
}
