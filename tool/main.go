// Command tool expands algebraic type declarations into Go sum types.
//
//	go run ./tool nodes.adt nodes_gen.go ast types=github.com/pontaoski/chic/types
//
// A declaration is either an alias, `type Name = Other;`, or a list of cases,
// each a struct: `type Node = | Leaf { Value int64 } | Pair { Left Node; Right Node };`.
// Trailing pkg=path arguments name the import path of qualified field types.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type FieldDecl struct {
	Name  string `@Ident`
	Slice bool   `@( "[" "]" )?`
	Type  string `@Ident ( @"." @Ident )?`
}

type CaseDecl struct {
	Name   string       `"|" @Ident`
	Fields []*FieldDecl `"{" ( @@ ";"? )* "}"`
}

type Declaration struct {
	Name  string      `"type" @Ident "="`
	Plain *string     `( @Ident`
	Cases []*CaseDecl `| @@+ ) ";"`
}

func fieldType(f *FieldDecl, imports map[string]string) Code {
	var s *Statement
	if f.Slice {
		s = Index()
	} else {
		s = Null()
	}

	if i := strings.IndexByte(f.Type, '.'); i >= 0 {
		pkg, name := f.Type[:i], f.Type[i+1:]
		path, ok := imports[pkg]
		if !ok {
			panic(fmt.Errorf("field %s: no import path given for package %s", f.Name, pkg))
		}
		return s.Qual(path, name)
	}
	return s.Id(f.Type)
}

func GenerateDecls(pkgname string, t *TypeDecls, imports map[string]string) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by tool/main.go from nodes.adt. DO NOT EDIT.")
	for pkg, path := range imports {
		f.ImportAlias(path, pkg)
	}

	for _, decl := range t.Declarations {
		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
			continue
		}

		marker := "is_" + decl.Name
		f.Type().Id(decl.Name).Interface(
			Id(marker).Params(),
		)

		for _, c := range decl.Cases {
			var fields []Code
			for _, field := range c.Fields {
				fields = append(fields, Id(field.Name).Add(fieldType(field, imports)))
			}
			f.Type().Id(c.Name).Struct(fields...)
			f.Func().Params(Id("v").Id(c.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&TypeDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	imports := make(map[string]string)
	for _, arg := range os.Args[4:] {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 {
			panic(fmt.Errorf("import argument %q is not pkg=path", arg))
		}
		imports[kv[0]] = kv[1]
	}

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := TypeDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &ast, imports)), 0644)
	if err != nil {
		panic(err)
	}
}
