package templates

// Payload contents. They are written verbatim and never interpreted.
const (
	cmakeLists = `cmake_minimum_required(VERSION 3.10)
project(TilingWM)

# Set C++ standard
set(CMAKE_CXX_STANDARD 17)
set(CMAKE_CXX_STANDARD_REQUIRED True)

# Include directories
include_directories(include)

# Add source files
set(SOURCES
    src/main.cpp
    src/wm.cpp
)

# Add executable
add_executable(tiling-wm ${SOURCES})

# Find X11 library
find_package(X11 REQUIRED)

# Link libraries
target_link_libraries(tiling-wm X11)
`

	mainSource = `#include "wm.h"

int main() {
    WindowManager wm;
    wm.run();
    return 0;
}
`

	wmSource = `#include "wm.h"
#include <iostream>

WindowManager::WindowManager() {
    display_ = XOpenDisplay(nullptr);
    if (!display_) {
        std::cerr << "Failed to open X display\n";
        exit(1);
    }
    root_ = DefaultRootWindow(display_);
}

WindowManager::~WindowManager() {
    XCloseDisplay(display_);
}

void WindowManager::run() {
    XSelectInput(display_, root_, SubstructureRedirectMask | SubstructureNotifyMask);

    while (true) {
        XEvent e;
        XNextEvent(display_, &e);
        
        switch (e.type) {
            case MapRequest:
                XMapWindow(display_, e.xmaprequest.window);
                break;
            // Handle other events like ConfigureRequest, KeyPress, etc.
        }
    }
}
`

	wmHeader = `#ifndef WM_H
#define WM_H

#include <X11/Xlib.h>

class WindowManager {
public:
    WindowManager();
    ~WindowManager();
    void run();
    
private:
    Display* display_;
    Window root_;
};

#endif // WM_H
`
)
