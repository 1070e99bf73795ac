// Package django turns a webpack-built Vue.js project into a Django app.
//
// RewriteEntryFile converts the generated index.html into a Django template
// by loading the staticfiles tag library and routing every hashed CSS/JS
// reference through {% static %}. ScaffoldApp adds the Python glue
// (__init__.py, urls.py), hooks the rewrite into the project's npm build
// script and points the webpack output at Django's templates/ and static/
// layout via PatchBuildConfig.
//
// The rewrite is line based and only understands the fixed shape webpack's
// html plugin emits (unquoted href=/static/css/… and src=/static/js/…
// attributes). It is not an HTML parser.
//
// All file access goes through a billy.Filesystem so the same code runs on
// the OS filesystem and in memory.
package django
